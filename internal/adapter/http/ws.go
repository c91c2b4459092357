package httpadapter

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/websocket"
)

var upgrader = websocket.HertzUpgrader{
	CheckOrigin: func(_ *app.RequestContext) bool { return true },
}

// events streams lifecycle transitions to the client. The subscription is
// released when the peer goes away or stops reading.
func (h Handler) events(_ context.Context, ctx *app.RequestContext) {
	err := upgrader.Upgrade(ctx, func(conn *websocket.Conn) {
		records, cancel := h.Controller.Subscribe()
		defer cancel()
		for rec := range records {
			if err := conn.WriteJSON(rec); err != nil {
				return
			}
		}
	})
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "websocket_upgrade_failed", "websocket upgrade failed")
	}
}
