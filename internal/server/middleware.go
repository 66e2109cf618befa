package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "session_id"
	topicCookieName   = "topic_id"

	ctxSessionID = "sessionID"
	ctxTopicID   = "topicID"
)

// sessionCookie assigns a session id cookie on first contact and exposes
// the session and topic ids to handlers.
func sessionCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookieName, sid, 0, "/", "", false, true)
		}
		c.Set(ctxSessionID, sid)

		if tid, err := c.Cookie(topicCookieName); err == nil {
			if id, err := strconv.ParseUint(tid, 10, 32); err == nil {
				c.Set(ctxTopicID, uint(id))
			}
		}
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

// topicID returns the topic id cookie value, or zero when absent.
func topicID(c *gin.Context) uint {
	if v, ok := c.Get(ctxTopicID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
