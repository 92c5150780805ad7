package server

import (
	"encoding/json"
	"log"
	"net/http"

	"git.lost.host/meutraa/bms/internal/library"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Handler serves the library read only:
//
//	GET /charts        every entry, without chart data
//	GET /charts/{sum}  one entry with its resolved chart
func Handler(lib library.Library) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/charts", list(lib)).Methods(http.MethodGet)
	router.HandleFunc("/charts/{sum}", load(lib)).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func list(lib library.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := lib.List()
		if nil != err {
			log.Println("unable to list library", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		write(w, entries)
	}
}

func load(lib library.Library) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := lib.Load(mux.Vars(r)["sum"])
		if err == library.ErrNotFound {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		} else if nil != err {
			log.Println("unable to load chart", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		write(w, struct {
			*library.Entry
			Chart json.RawMessage `json:"chart"`
		}{e, e.Data})
	}
}

func write(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); nil != err {
		log.Println("unable to write response", err)
	}
}
