package server

import (
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"entropy/calculator"
	"entropy/diagram"
	"entropy/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	hub := NewHub()
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	hub.conn = conn
	defer conn.Close()
	go hub.handleRequest()
	go hub.handleResponse()
	var msg model.Msg
	for {
		err = conn.ReadJSON(&msg)
		if err != nil {
			log.Println("err: ", err)
			return
		}
		hub.msg <- msg
	}
}

// serveDiagram renders the T-S diagram for inputs passed as query
// parameters; unset parameters fall back to the configured defaults.
func (s *Server) serveDiagram(w http.ResponseWriter, r *http.Request) {
	in, resolution, err := parseDiagramRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := calculator.Compute(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	curve := calculator.GenerateCurve(res, in.TInitial, in.TFinal, resolution)
	w.Header().Set("Content-Type", "image/png")
	err = diagram.WritePNG(w, res, curve)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseDiagramRequest(r *http.Request) (model.ProcessInput, int, error) {
	q := r.URL.Query()
	in := calculator.Defaults()
	if v := q.Get("process"); v != "" {
		in.ProcessType = model.ProcessType(v)
	}
	var err error
	parse := func(key string, dst *float64) {
		v := q.Get(key)
		if v == "" || err != nil {
			return
		}
		*dst, err = strconv.ParseFloat(v, 64)
	}
	parse("n", &in.N)
	parse("ti", &in.TInitial)
	parse("tf", &in.TFinal)
	parse("vi", &in.VInitial)
	parse("vf", &in.VFinal)
	parse("cv", &in.Cv)
	parse("cp", &in.Cp)
	resolution := 0
	if v := q.Get("res"); v != "" && err == nil {
		resolution, err = strconv.Atoi(v)
	}
	return in, resolution, err
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	http.HandleFunc("/diagram", func(w http.ResponseWriter, r *http.Request) {
		s.serveDiagram(w, r)
	})
	err := http.ListenAndServe(s.addr, nil)
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
