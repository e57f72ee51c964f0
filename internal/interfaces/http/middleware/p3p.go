package middleware

import "github.com/gin-gonic/gin"

// P3PPolicy is the compact privacy policy some browsers require before
// they keep third-party cookies.
const P3PPolicy = `CP="NOI ADM DEV PSAi COM NAV OUR OTR STP IND DEM"`

func P3P() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("P3P", P3PPolicy)
		c.Next()
	}
}
