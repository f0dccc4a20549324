package server

import (
	"encoding/json"
	"testing"

	"entropy/calculator"
	"entropy/model"
)

func TestHubCompute(t *testing.T) {
	h := NewHub()
	go h.handleRequest()

	in := calculator.Defaults()
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	h.msg <- model.Msg{Type: "compute", Content: string(data)}
	reply := <-h.computed
	if reply.Type != "computed" {
		t.Fatalf("wrong reply type: %s", reply.Type)
	}
	var cr model.ComputeReply
	err = json.Unmarshal([]byte(reply.Content), &cr)
	if err != nil {
		t.Fatal(err)
	}
	if cr.Result.ProcessType != in.ProcessType {
		t.Errorf("wrong process type: %s", cr.Result.ProcessType)
	}
	if len(cr.Curve) == 0 {
		t.Error("empty curve")
	}
}

func TestHubComputeInvalidInput(t *testing.T) {
	h := NewHub()
	go h.handleRequest()

	in := calculator.Defaults()
	in.VInitial = 0
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	h.msg <- model.Msg{Type: "compute", Content: string(data)}
	reply := <-h.invalidInput
	if reply.Type != "invalidInput" {
		t.Fatalf("wrong reply type: %s", reply.Type)
	}
	if reply.Content == "" {
		t.Error("empty error message")
	}
}

func TestHubDefaults(t *testing.T) {
	h := NewHub()
	go h.handleRequest()

	h.msg <- model.Msg{Type: "defaults"}
	reply := <-h.defaultsSet
	var in model.ProcessInput
	err := json.Unmarshal([]byte(reply.Content), &in)
	if err != nil {
		t.Fatal(err)
	}
	if in != calculator.Defaults() {
		t.Errorf("wrong defaults: %+v", in)
	}
}

func TestHubInfo(t *testing.T) {
	h := NewHub()
	go h.handleRequest()

	h.msg <- model.Msg{Type: "info", Content: "Adiabatic"}
	reply := <-h.infoSent
	if reply.Type != "infoSent" || reply.Content == "" {
		t.Fatalf("bad reply: %+v", reply)
	}

	h.msg <- model.Msg{Type: "info", Content: "Isentropic"}
	reply = <-h.invalidInput
	if reply.Type != "invalidInput" {
		t.Fatalf("bad reply: %+v", reply)
	}
}
