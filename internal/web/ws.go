package web

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/johnsiilver/boutique"

	"StockDashboard/internal/chart"
	"StockDashboard/internal/state"
	"StockDashboard/internal/state/data"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Message types pushed to websocket clients.
const (
	msgChart = "chart"
	msgError = "error"
)

// wsServer is a message pushed to the browser.
type wsServer struct {
	Type    string             `json:"type"`
	Version uint64             `json:"version,omitempty"`
	Chart   *chart.Description `json:"chart,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// wsClient is a message sent by the browser.
type wsClient struct {
	Series string `json:"series"`
}

// handleWS pushes the chart every time the selection or the dataset changes and
// accepts selection changes from the client.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	selCh, selCancel, err := s.Dashboard.Subscribe(state.FieldSelected)
	if err != nil {
		log.Printf("[ERROR] subscribe %s: %v", state.FieldSelected, err)
		return
	}
	defer selCancel()
	recCh, recCancel, err := s.Dashboard.Subscribe(state.FieldRecords)
	if err != nil {
		log.Printf("[ERROR] subscribe %s: %v", state.FieldRecords, err)
		return
	}
	defer recCancel()

	desc := s.Dashboard.Chart()
	if err := conn.WriteJSON(wsServer{Type: msgChart, Version: s.Dashboard.Version(), Chart: &desc}); err != nil {
		return
	}

	errs := make(chan string, 1)
	closed := make(chan struct{})
	go s.wsReceiver(conn, errs, closed)

	for {
		select {
		case <-closed:
			return
		case e := <-errs:
			if err := conn.WriteJSON(wsServer{Type: msgError, Error: e}); err != nil {
				return
			}
		case sig, ok := <-selCh:
			if !ok || s.pushChart(conn, sig) != nil {
				return
			}
		case sig, ok := <-recCh:
			if !ok || s.pushChart(conn, sig) != nil {
				return
			}
		}
	}
}

// wsReceiver reads selection requests until the client goes away.
func (s *Server) wsReceiver(conn *websocket.Conn, errs chan<- string, closed chan<- struct{}) {
	defer close(closed)
	for {
		var m wsClient
		if err := conn.ReadJSON(&m); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WARN] websocket %s: %v", conn.RemoteAddr(), err)
			}
			return
		}
		if _, err := s.Selector.Change(m.Series); err != nil {
			select {
			case errs <- err.Error():
			default:
			}
		}
	}
}

func (s *Server) pushChart(conn *websocket.Conn, sig boutique.Signal) error {
	st := sig.State.Data.(data.State)
	desc := chart.Render(st.Records, st.Selected)
	if err := conn.WriteJSON(wsServer{Type: msgChart, Version: sig.State.Version, Chart: &desc}); err != nil {
		log.Printf("[WARN] websocket push to %s: %v", conn.RemoteAddr(), err)
		return err
	}
	return nil
}
