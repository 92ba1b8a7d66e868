package server

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"soc-api/internal/config"
	"soc-api/internal/export"
	"soc-api/internal/metrics"
	"soc-api/internal/models"
	"soc-api/internal/query"
	"soc-api/internal/store"
)

const (
	msgDocs              = "Dokumentace na /api"
	msgWorkAdded         = "Práce byla úspěšně přidána."
	msgWorkDeleted       = "Práce byla odstraněna."
	msgWorkNotFound      = "Práce nebyla nalezena."
	msgParticipantAdded  = "Účastník byl přidán."
	msgPublished         = "Data byla publikována do Google Sheets."
	msgSheetsUnavailable = "Export do Google Sheets není nakonfigurován."

	maxBodyBytes = 1 << 20
)

//go:embed openapi.json
var openAPIDoc []byte

// Notifier is told about newly created records. Calls happen off the
// request goroutine.
type Notifier interface {
	WorkAdded(w models.Work)
	ParticipantAdded(p models.Participant)
}

// Publisher mirrors works and standings to an external spreadsheet.
type Publisher interface {
	Publish(ctx context.Context, works []models.Work, standings []models.Standing) error
}

// New wires the API into an *http.Server listening on cfg.HTTPAddr.
// pub and notify may be nil.
func New(cfg config.Config, st *store.Store, pub Publisher, notify Notifier) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewHandler(st, pub, notify, metrics.New(st.Counts)),
	}
}

func NewHandler(st *store.Store, pub Publisher, notify Notifier, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": msgDocs})
	})

	// API documentation
	mux.HandleFunc("GET /api", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(docsHTML))
	})
	mux.HandleFunc("GET /api/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(openAPIDoc)
	})

	// ---------- Works ----------

	mux.HandleFunc("GET /works", func(w http.ResponseWriter, r *http.Request) {
		f, err := parseWorkFilter(r)
		if err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, query.FindWorks(st.ListWorks(), f))
	})

	mux.HandleFunc("POST /works", func(w http.ResponseWriter, r *http.Request) {
		var in models.Work
		if err := decodeObject(w, r, &in); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		work := st.AddWork(in)
		if notify != nil {
			go notify.WorkAdded(work)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": msgWorkAdded,
			"work":    work,
		})
	})

	mux.HandleFunc("DELETE /works/{work_id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("work_id"))
		if err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "work_id must be an integer")
			return
		}
		if err := st.DeleteWork(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeDetail(w, http.StatusNotFound, msgWorkNotFound)
				return
			}
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": msgWorkDeleted})
	})

	// ---------- Participants ----------

	mux.HandleFunc("GET /participants", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, st.ListParticipants())
	})

	mux.HandleFunc("POST /participants", func(w http.ResponseWriter, r *http.Request) {
		var in models.Participant
		if err := decodeObject(w, r, &in); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		p := st.AddParticipant(in)
		if notify != nil {
			go notify.ParticipantAdded(p)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":     msgParticipantAdded,
			"participant": p,
		})
	})

	// ---------- Results ----------

	mux.HandleFunc("GET /results", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, query.JoinResults(st.ListResults(), st.ListWorks()))
	})

	// ---------- Export ----------

	mux.HandleFunc("GET /export/csv", func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, st.ListWorks()); err != nil {
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=works.csv")
		_, _ = w.Write(buf.Bytes())
	})

	mux.HandleFunc("POST /export/sheets", func(w http.ResponseWriter, r *http.Request) {
		if pub == nil {
			writeDetail(w, http.StatusServiceUnavailable, msgSheetsUnavailable)
			return
		}
		works := st.ListWorks()
		standings := query.JoinResults(st.ListResults(), works)
		if err := pub.Publish(r.Context(), works, standings); err != nil {
			log.Printf("sheets publish: %v", err)
			writeDetail(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": msgPublished})
	})

	mux.Handle("GET /metrics", m.Handler())

	return withRequestLog(mux, m)
}

func parseWorkFilter(r *http.Request) (query.WorkFilter, error) {
	q := r.URL.Query()
	f := query.WorkFilter{
		Keyword: q.Get("keyword"),
		Field:   q.Get("field"),
	}
	if raw := strings.TrimSpace(q.Get("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return f, fmt.Errorf("year must be an integer")
		}
		f.Year = &year
	}
	return f, nil
}

// decodeObject requires a JSON object body. Unknown keys are ignored.
func decodeObject(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("body must be a JSON object")
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("invalid body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

const docsHTML = `<!doctype html><html><head><meta charset="utf-8"><title>SOČ API</title></head><body>
<h2>SOČ API 1.1.0</h2>
<p>API pro správu a archivaci SOČ. Specifikace: <a href="/api/openapi.json">/api/openapi.json</a></p>
<ul>
<li><code>GET /works?keyword=&amp;field=&amp;year=</code> Získání seznamu prací</li>
<li><code>POST /works</code> Přidání nové práce</li>
<li><code>DELETE /works/{work_id}</code> Smazání práce</li>
<li><code>GET /participants</code> Získání seznamu účastníků</li>
<li><code>POST /participants</code> Přidání účastníka</li>
<li><code>GET /results</code> Výsledky SOČ</li>
<li><code>GET /export/csv</code> Export dat do CSV</li>
<li><code>POST /export/sheets</code> Export do Google Sheets</li>
</ul>
</body></html>`
