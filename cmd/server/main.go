// Command server exposes the realiser as a JSON REST API.
//
// Endpoints:
//
//	POST /api/realise   body: {"language":"fr","document":{...}}
//	GET  /api/inflect?base=<word>&category=<cat>[&lang=fr][&tense=past...]
//	GET  /api/lexicon?base=<word>[&category=<cat>][&lang=fr]
//	GET  /api/languages
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/cours-de-latin/realiser"
)

// ---- JSON response types ------------------------------------------------

type tokenJSON struct {
	Text       string `json:"text"`
	Category   string `json:"category"`
	Function   string `json:"function,omitempty"`
	Appositive bool   `json:"appositive,omitempty"`
}

type realiseRequest struct {
	Language string          `json:"language"`
	Document json.RawMessage `json:"document"`
}

type realiseResponse struct {
	Language string      `json:"language"`
	Text     string      `json:"text"`
	Tokens   []tokenJSON `json:"tokens"`
}

type cellJSON struct {
	Label string `json:"label"`
	Form  string `json:"form"`
}

type inflectResponse struct {
	Base     string     `json:"base"`
	Category string     `json:"category"`
	Form     string     `json:"form,omitempty"`
	Cells    []cellJSON `json:"cells"`
}

type entryJSON struct {
	Base     string            `json:"base"`
	Category string            `json:"category"`
	ID       string            `json:"id,omitempty"`
	Forms    map[string]string `json:"forms,omitempty"`
}

type lexiconResponse struct {
	Entries []entryJSON `json:"entries"`
}

type languagesResponse struct {
	Languages map[string]string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

// realisers holds one realiser per supported language tag.
type realisers map[string]*realiser.Realiser

// pick returns the realiser for a request tag; the empty tag is English.
func (rs realisers) pick(tag string) (*realiser.Realiser, error) {
	lang, err := realiser.LanguageFor(tag)
	if err != nil {
		return nil, err
	}
	r, ok := rs[lang.Tag().String()]
	if !ok {
		return nil, fmt.Errorf("language %q not loaded", tag)
	}
	return r, nil
}

func toTokensJSON(tokens []realiser.Token) []tokenJSON {
	out := make([]tokenJSON, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, tokenJSON{
			Text:       t.Text,
			Category:   string(t.Category),
			Function:   string(t.Function),
			Appositive: t.Appositive,
		})
	}
	return out
}

func toEntryJSON(w *realiser.WordElement) entryJSON {
	e := entryJSON{Base: w.Base, Category: string(w.Category()), ID: w.ID}
	if len(w.Forms) > 0 {
		e.Forms = make(map[string]string, len(w.Forms))
		for k, form := range w.Forms {
			e.Forms[k.Key()] = form
		}
	}
	return e
}

// inflectParams are the feature query parameters of an inflect request.
var inflectParams = []string{
	realiser.FeatTense, realiser.FeatForm, realiser.FeatPerson,
	realiser.FeatNumber, realiser.FeatGender, realiser.FeatComparative,
	realiser.FeatSuperlative, realiser.FeatPossessive, realiser.FeatNegated,
}

func queryFeatures(r *http.Request) (realiser.Features, error) {
	feats := realiser.Features{}
	q := r.URL.Query()
	for _, key := range inflectParams {
		v := q.Get(key)
		if v == "" {
			continue
		}
		parsed, err := realiser.ParseFeature(key, v)
		if err != nil {
			return nil, err
		}
		feats.Set(key, parsed)
	}
	return feats, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleRealise(rs realisers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body realiseRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Document) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'document' field")
			return
		}
		re, err := rs.pick(body.Language)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Realising consumes the tree; the tokens come from a second decode.
		decode := func() (realiser.Element, error) {
			return realiser.DecodeDocument(bytes.NewReader(body.Document), re.Factory())
		}
		el, err := decode()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		text := re.RealiseSentence(el)
		el, _ = decode()
		writeJSON(w, http.StatusOK, realiseResponse{
			Language: re.Language().Tag().String(),
			Text:     text,
			Tokens:   toTokensJSON(re.Tokens(el)),
		})
	}
}

func handleInflect(rs realisers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		base := strings.TrimSpace(q.Get("base"))
		if base == "" {
			writeError(w, http.StatusBadRequest, "missing 'base' query parameter")
			return
		}
		re, err := rs.pick(q.Get("lang"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		cat := realiser.ParseCategory(q.Get("category"))
		if cat == realiser.CatAny {
			cat = realiser.CatNoun
		}
		if !cat.Lexical() {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("category %q is not a word category", cat))
			return
		}
		feats, err := queryFeatures(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp := inflectResponse{Base: base, Category: string(cat)}
		if len(feats) > 0 {
			resp.Form = re.Inflect(base, cat, feats)
		}
		for _, c := range re.InflectionTable(base, cat).Cells {
			resp.Cells = append(resp.Cells, cellJSON{Label: c.Label, Form: c.Form})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleLexicon(rs realisers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		base := strings.TrimSpace(q.Get("base"))
		if base == "" {
			writeError(w, http.StatusBadRequest, "missing 'base' query parameter")
			return
		}
		re, err := rs.pick(q.Get("lang"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		words := re.Lexicon().Lookup(base, realiser.ParseCategory(q.Get("category")))
		if len(words) == 0 {
			writeError(w, http.StatusNotFound, fmt.Sprintf("word %q not found", base))
			return
		}
		out := make([]entryJSON, 0, len(words))
		for _, wd := range words {
			out = append(out, toEntryJSON(wd))
		}
		// sort by category for deterministic output
		sort.Slice(out, func(i, j int) bool {
			return out[i].Category < out[j].Category
		})
		writeJSON(w, http.StatusOK, lexiconResponse{Entries: out})
	}
}

func handleLanguages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, languagesResponse{Languages: realiser.Languages()})
	}
}

// withRequestID tags every request with an id, echoed in the
// X-Request-Id header and the access log.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		log.Printf("%s %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// newHandler wires the routes, CORS and request ids.
func newHandler(rs realisers, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/realise", handleRealise(rs))
	mux.HandleFunc("/api/inflect", handleInflect(rs))
	mux.HandleFunc("/api/lexicon", handleLexicon(rs))
	mux.HandleFunc("/api/languages", handleLanguages())

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return withRequestID(c.Handler(mux))
}

// loadRealisers builds one realiser per supported language, sharing the
// file configuration apart from the language.
func loadRealisers(cfg realiser.Config) (realisers, error) {
	primary, err := realiser.LanguageFor(cfg.Language)
	if err != nil {
		return nil, err
	}
	rs := make(realisers)
	for tag := range realiser.Languages() {
		c := cfg
		c.Language = tag
		if tag != primary.Tag().String() {
			// an extra lexicon file belongs to the configured language
			c.LexiconPath = ""
		}
		r, err := realiser.New(c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		rs[tag] = r
	}
	return rs, nil
}

// ---- main ---------------------------------------------------------------

func main() {
	configPath := flag.String("config", "realiser.yaml", "path to the YAML configuration file")
	addr := flag.String("addr", ":8080", "listen address")
	origins := flag.String("origins", "*", "comma-separated allowed CORS origins")
	flag.Parse()

	cfg, err := realiser.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.Printf("loading lexicons (default language %s) …", cfg.Language)
	rs, err := loadRealisers(cfg)
	if err != nil {
		log.Fatalf("failed to load lexicons: %v", err)
	}
	log.Println("lexicons loaded")

	handler := newHandler(rs, strings.Split(*origins, ","))
	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
