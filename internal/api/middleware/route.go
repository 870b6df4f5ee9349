package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

func currentRoute(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return ""
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return ""
	}
	return tmpl
}

// routeTemplate возвращает шаблон маршрута mux, чтобы не плодить метки по значениям
func routeTemplate(r *http.Request) string {
	if route := currentRoute(r); route != "" {
		return route
	}
	return r.URL.Path
}
