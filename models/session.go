package models

import "time"

// Session is the gateway-owned replacement for the credential the
// browser used to hold. The upstream token never leaves the server.
type Session struct {
	Session_ID      string    `json:"sessionId"`
	User_ID         int       `json:"userId"`
	Username        string    `json:"username"`
	Upstream_Token  string    `json:"-"`
	Last_Activity   time.Time `json:"lastActivity"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
}
