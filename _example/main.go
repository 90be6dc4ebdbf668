// Command example demonstrates formvalidation behind an HTTP endpoint: a
// sign-up form is validated field by field, its OpenAPI document is served
// and validation metrics are exposed for Prometheus.
//
// Run:
//
//	FORMVALIDATION_WARNINGS_BLOCK=false go run ./_example
//
// Then POST to http://localhost:8080/signup, e.g.
//
//	curl -d '{"name":"Jane","email":"jane@","age":70,"plan":"pro"}' localhost:8080/signup
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	fv "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/openapi"
	"github.com/Gobd/formvalidation/transform"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// SignUp is the submitted form.
type SignUp struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
	Plan  string `json:"plan"`
}

// ErrorResponse is the 422 body: message per failing field.
type ErrorResponse struct {
	Errors error `json:"errors"`
}

// mountedField is what the server needs from a field of any value type.
type mountedField interface {
	openapi.Describable
	Wait()
	Close()
}

type server struct {
	cfg     fv.Config
	logger  zerolog.Logger
	metrics *fv.Metrics
}

// fields mounts the sign-up fields on form with the submitted values.
func (s *server) fields(form *fv.Form, in SignUp) []mountedField {
	opts := func(label string, extra ...fv.Option) []fv.Option {
		o := append(s.cfg.Options(), fv.WithLabel(label), fv.WithMetrics(s.metrics))
		return append(o, extra...)
	}
	name := fv.Attach(form, "name", in.Name, []fv.Validator[string]{
		fv.Normalize(transform.CollapseSpace[string], fv.HasAlphabetic[string]()),
		fv.NonCreditCardNumber[string](),
	}, opts("Name", fv.WithRequired(true), fv.WithMaxCharacters(50))...)
	email := fv.Attach(form, "email", in.Email, []fv.Validator[string]{
		fv.Normalize(transform.TrimSpace[string], fv.EmailAddress[string]()),
	}, opts("Email", fv.WithRequired(true), fv.WithFooter("Used for sign-in"))...)
	age := fv.Attach(form, "age", in.Age, []fv.Validator[int]{
		fv.MinMax(18, 65, 13, 130),
	}, opts("Age")...)
	plan := fv.Attach(form, "plan", in.Plan, []fv.Validator[string]{
		fv.Normalize(transform.ToLower[string], fv.In("free", "pro", "team")),
	}, opts("Plan")...)
	return []mountedField{name, email, age, plan}
}

func (s *server) signUp(w http.ResponseWriter, r *http.Request) {
	var in SignUp
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := fv.NewForm(append(s.cfg.FormOptions(), fv.WithFormLogger(s.logger))...)
	fields := s.fields(form, in)
	defer func() {
		for _, f := range fields {
			f.Close()
		}
	}()

	form.Submit()
	for _, f := range fields {
		f.Wait()
	}

	w.Header().Set("Content-Type", "application/json")
	if !form.IsValid() {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Errors: form.Err()})
		return
	}
	in.Plan = strings.ToLower(in.Plan)
	_ = json.NewEncoder(w).Encode(in)
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := fv.LoadConfig("")
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	reg := prometheus.NewRegistry()
	s := &server{cfg: cfg, logger: logger, metrics: fv.NewMetrics(reg)}

	// Document the form once with zero values.
	doc := openapi.DocBase("Sign-up API", "Demonstrates formvalidation", "0.1.0")
	form := fv.NewForm()
	fields := s.fields(form, SignUp{})
	describable := make([]openapi.Describable, len(fields))
	for i, f := range fields {
		describable[i] = f
	}
	if err := openapi.AddForm(doc, "/signup", "signUp", describable...); err != nil {
		logger.Fatal().Err(err).Msg("build openapi document")
	}
	for _, f := range fields {
		f.Close()
	}

	r := chi.NewRouter()
	r.Post("/signup", s.signUp)
	r.Get("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	})
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		if err := yaml.NewEncoder(w).Encode(doc); err != nil {
			logger.Error().Err(err).Msg("encode openapi document")
		}
	})
	r.Get("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		families, err := reg.Gather()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		format := expfmt.NewFormat(expfmt.TypeTextPlain)
		w.Header().Set("Content-Type", string(format))
		enc := expfmt.NewEncoder(w, format)
		for _, mf := range families {
			if err := enc.Encode(mf); err != nil {
				logger.Error().Err(err).Msg("encode metrics")
				return
			}
		}
	})

	logger.Info().Str("addr", ":8080").Msg("listening")
	if err := http.ListenAndServe(":8080", r); err != nil {
		logger.Fatal().Err(err).Msg("serve")
	}
}
