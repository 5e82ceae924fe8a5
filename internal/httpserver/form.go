package httpserver

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enesozmus/betterrest/internal/sleep"
)

//go:embed web/index.html
var webFS embed.FS

type formData struct {
	WakeTime   string
	SleepHours float64
	SleepMin   float64
	SleepMax   float64
	SleepStep  float64
	CoffeeCups int
	CoffeeMin  int
	CoffeeMax  int
}

// registerFormRoute serves the single-screen form: plain html/template
// plus a fetch call to the JSON API.
func (srv *HTTPServer) registerFormRoute() {
	tpl := template.Must(template.ParseFS(webFS, "web/index.html"))
	srv.gin.SetHTMLTemplate(tpl)

	srv.gin.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", formData{
			WakeTime:   sleep.DefaultWakeTime,
			SleepHours: sleep.DefaultSleepHours,
			SleepMin:   sleep.MinSleepHours,
			SleepMax:   sleep.MaxSleepHours,
			SleepStep:  sleep.SleepHoursStep,
			CoffeeCups: sleep.DefaultCoffeeCups,
			CoffeeMin:  sleep.MinCoffeeCups,
			CoffeeMax:  sleep.MaxCoffeeCups,
		})
	})
}
