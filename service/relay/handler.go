package relay

import (
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// writePump drains one connection's outbound queue onto its socket in FIFO
// order. It stops on the first write failure, on a queued close signal, or
// when the queue is closed out from under it; the caller runs cleanup
// afterwards, which also closes the socket and thereby unblocks the read
// loop.
func writePump(ws *websocket.Conn, q *Outbound) {
	for {
		f, ok := q.Pop()
		if !ok {
			// queue closed by cleanup: reader already gone, just say goodbye
			sendClose(ws)
			return
		}
		if f.MsgType == websocket.CloseMessage {
			sendClose(ws)
			return
		}
		_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ws.WriteMessage(f.MsgType, f.Data); err != nil {
			return
		}
	}
}

func sendClose(ws *websocket.Conn) {
	_ = ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
}
