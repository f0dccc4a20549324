package server

import (
	"net/http/httptest"
	"testing"

	"github.com/gorilla/websocket"

	"entropy/calculator"
	"entropy/model"
)

func TestParseDiagramRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/diagram?process=Isochoric&n=2&ti=350&res=10", nil)
	in, resolution, err := parseDiagramRequest(r)
	if err != nil {
		t.Fatal(err)
	}
	if in.ProcessType != model.Isochoric {
		t.Errorf("wrong process: %s", in.ProcessType)
	}
	if in.N != 2 || in.TInitial != 350 {
		t.Errorf("params not applied: %+v", in)
	}
	// unset parameters keep the configured defaults
	if in.TFinal != calculator.Defaults().TFinal {
		t.Errorf("default not kept: %+v", in)
	}
	if resolution != 10 {
		t.Errorf("wrong resolution: %d", resolution)
	}

	r = httptest.NewRequest("GET", "/diagram?n=abc", nil)
	_, _, err = parseDiagramRequest(r)
	if err == nil {
		t.Fatal("want parse error")
	}
}

func TestServeDiagram(t *testing.T) {
	s := NewServer(":0", websocket.Upgrader{})
	r := httptest.NewRequest("GET", "/diagram?process=Isothermal", nil)
	w := httptest.NewRecorder()
	s.serveDiagram(w, r)
	if w.Code != 200 {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("wrong content type: %s", ct)
	}

	r = httptest.NewRequest("GET", "/diagram?process=Isothermal&vi=0", nil)
	w = httptest.NewRecorder()
	s.serveDiagram(w, r)
	if w.Code != 400 {
		t.Fatalf("want 400, got %d", w.Code)
	}
}
