package server

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"entropy/calculator"
	"entropy/model"
)

// Hub handles the request and response traffic of one client connection.
type Hub struct {
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	defaultsSet  chan model.Msg
	infoSent     chan model.Msg
	computed     chan model.Msg
	invalidInput chan model.Msg
}

func NewHub() *Hub {
	return &Hub{
		msg:          make(chan model.Msg, 10),
		defaultsSet:  make(chan model.Msg, 10),
		infoSent:     make(chan model.Msg, 10),
		computed:     make(chan model.Msg, 10),
		invalidInput: make(chan model.Msg, 10),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.defaultsSet:
			h.write(reply)
		case reply := <-h.infoSent:
			h.write(reply)
		case reply := <-h.computed:
			h.write(reply)
		case reply := <-h.invalidInput:
			h.write(reply)
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) write(reply model.Msg) {
	err := h.conn.WriteJSON(&reply)
	if err != nil {
		log.Println("err: ", err)
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case "defaults":
				data, err := json.Marshal(calculator.Defaults())
				if err != nil {
					log.Println("err: ", err)
					break
				}
				h.defaultsSet <- model.Msg{
					Type:    "defaultsSet",
					Content: string(data),
				}
			case "info":
				info := calculator.ProcessInfo(model.ProcessType(msg.Content))
				if info == "" {
					h.invalidInput <- model.Msg{
						Type:    "invalidInput",
						Content: "no such process: " + msg.Content,
					}
					break
				}
				h.infoSent <- model.Msg{
					Type:    "infoSent",
					Content: info,
				}
			case "compute":
				h.compute(msg)
			default:
				log.Println("no such type")
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// compute runs the calculator on the request payload and routes the reply.
// Precondition violations go back to the client, not to the log.
func (h *Hub) compute(msg model.Msg) {
	var in model.ProcessInput
	err := json.Unmarshal([]byte(msg.Content), &in)
	if err != nil {
		h.invalidInput <- model.Msg{Type: "invalidInput", Content: err.Error()}
		return
	}
	res, err := calculator.Compute(in)
	if err != nil {
		var invalid *calculator.InvalidInputError
		if errors.As(err, &invalid) {
			h.invalidInput <- model.Msg{Type: "invalidInput", Content: invalid.Error()}
			return
		}
		log.Println("err: ", err)
		return
	}
	curve := calculator.GenerateCurve(res, in.TInitial, in.TFinal, 0)
	data, err := json.Marshal(model.ComputeReply{Result: res, Curve: curve})
	if err != nil {
		log.Println("err: ", err)
		return
	}
	h.computed <- model.Msg{Type: "computed", Content: string(data)}
}
