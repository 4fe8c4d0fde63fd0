package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/nmrsim/internal/nmr"
)

func TestWriteGeometry(t *testing.T) {
	sphere, _ := nmr.SphereGeometry(10)
	t2, _ := nmr.T2(20, sphere.SurfaceToVolume())

	var buf bytes.Buffer
	if err := WriteGeometry(&buf, sphere, 20, t2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "1256.6371") {
		t.Errorf("expected surface area in output, got:\n%s", out)
	}
	if !strings.Contains(out, "0.3000") {
		t.Errorf("expected S/V in output, got:\n%s", out)
	}
	if !strings.Contains(out, "0.1667") {
		t.Errorf("expected T2 in output, got:\n%s", out)
	}
}

func TestWriteTables(t *testing.T) {
	curves, err := nmr.GenerateScenarios(1.0, []nmr.Scenario{
		{Label: "porosity_1", Porosity: 30},
		{Label: "porosity_2", Porosity: 20},
	}, nmr.TimeDomain{0, 1})
	if err != nil {
		t.Fatalf("scenarios: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteTables(&buf, curves); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "porosity_1 (30%)") || !strings.Contains(out, "porosity_2 (20%)") {
		t.Errorf("expected scenario headings, got:\n%s", out)
	}
	if strings.Index(out, "porosity_1") > strings.Index(out, "porosity_2") {
		t.Error("expected scenario order preserved")
	}
	if !strings.Contains(out, "30.0000") {
		t.Errorf("expected exact t=0 amplitude, got:\n%s", out)
	}
}

func TestCrossPlot(t *testing.T) {
	curves, err := nmr.GenerateScenarios(2.0, []nmr.Scenario{
		{Label: "porosity_1", Porosity: 30},
	}, nmr.TimeDomain{0, 1, 2, 4, 8})
	if err != nil {
		t.Fatalf("scenarios: %v", err)
	}

	out := CrossPlot(curves, 40, 8)
	if out == "" {
		t.Fatal("expected non-empty plot")
	}
	if !strings.Contains(out, "porosity_1 (30%)") {
		t.Errorf("expected legend, got:\n%s", out)
	}
	if !strings.Contains(out, "porosity t2 decay") {
		t.Errorf("expected caption, got:\n%s", out)
	}
}

func TestCrossPlotEmpty(t *testing.T) {
	if out := CrossPlot(nil, 40, 8); out != "" {
		t.Errorf("expected empty string for no curves, got %q", out)
	}
}
