package dotenv

import (
	"reflect"
	"sync"

	"github.com/Azhovan/dotenv/envstore"
	"github.com/Azhovan/dotenv/internal/normalize"
)

// ValidationResult lists the required variables that are missing or blank.
// Errors and FieldErrors are in the order the names were given.
type ValidationResult struct {
	Errors      []string
	FieldErrors []FieldError
}

// HasErrors reports whether any required variable is missing.
func (r ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Missing returns the names of the missing variables.
func (r ValidationResult) Missing() []string {
	names := make([]string, len(r.FieldErrors))
	for i, fe := range r.FieldErrors {
		names[i] = fe.Name
	}
	return names
}

// Err returns nil when nothing is missing, otherwise a *ValidationError.
func (r ValidationResult) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &ValidationError{FieldErrors: r.FieldErrors}
}

// Validator checks that required variables are set and non-blank.
// It never writes to its store.
type Validator struct {
	store Store
}

// NewValidator creates a Validator reading from store. A nil store means the
// process environment.
func NewValidator(store Store) *Validator {
	if store == nil {
		store = envstore.OS{}
	}
	return &Validator{store: store}
}

var defaultValidator = sync.OnceValue(func() *Validator {
	return NewValidator(envstore.OS{})
})

// DefaultValidator returns the shared Validator bound to the process environment.
func DefaultValidator() *Validator {
	return defaultValidator()
}

// Validate reports every name that is unset, empty or whitespace-only.
func (v *Validator) Validate(names ...string) ValidationResult {
	var result ValidationResult

	for _, name := range names {
		value, ok := v.store.Get(name)
		if ok && !normalize.IsBlank(value) {
			continue
		}

		fe := FieldError{
			Name:    name,
			Code:    ErrCodeMissing,
			Message: "variable is not set",
		}
		if ok {
			fe.Code = ErrCodeBlank
			fe.Message = "variable is blank"
		}

		result.Errors = append(result.Errors, missingMessage(name))
		result.FieldErrors = append(result.FieldErrors, fe)
	}

	return result
}

// ValidateModel validates the names returned by RequiredNames(model).
func (v *Validator) ValidateModel(model any) ValidationResult {
	return v.Validate(RequiredNames(model)...)
}

// ValidateFor validates the required names of struct type T.
func ValidateFor[T any](v *Validator) ValidationResult {
	return v.ValidateModel(reflect.TypeFor[T]())
}

// Validate checks names against the process environment using DefaultValidator.
func Validate(names ...string) ValidationResult {
	return DefaultValidator().Validate(names...)
}

// RequiredNames derives required variable names from a struct.
// model may be a struct, a pointer to one, or a reflect.Type.
// Every exported string field is required, named after the field, in
// declaration order. Embedded structs are flattened.
//
// The `conf` tag adjusts this:
//
//	DatabaseURL string `conf:"env:DATABASE_URL"`  // renamed
//	LogLevel    string `conf:"optional"`          // not required
//	Scratch     string `conf:"-"`                 // ignored
func RequiredNames(model any) []string {
	return collectNames(model, func(tags tagConfig) bool { return !tags.optional })
}

// SecretNames returns the variable names of string fields tagged
// `conf:"secret"`, named and ordered as in RequiredNames. Optional fields are
// included. Pass the result to WithRedact:
//
//	dotenv.DumpReport(w, report, dotenv.WithRedact(dotenv.SecretNames(Config{})...))
func SecretNames(model any) []string {
	return collectNames(model, func(tags tagConfig) bool { return tags.secret })
}

// collectNames walks the string fields of model, keeping those whose tag
// satisfies keep.
func collectNames(model any, keep func(tagConfig) bool) []string {
	if model == nil {
		return nil
	}

	t, ok := model.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(model)
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	w := &nameWalker{keep: keep, seen: make(map[string]bool), visited: make(map[reflect.Type]bool)}
	w.collect(t)
	return w.names
}

// nameWalker collects variable names across a struct and its embedded structs.
type nameWalker struct {
	keep    func(tagConfig) bool
	names   []string
	seen    map[string]bool
	visited map[reflect.Type]bool
}

func (w *nameWalker) collect(t reflect.Type) {
	if w.visited[t] {
		return
	}
	w.visited[t] = true

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tags := parseTag(field.Tag.Get(tagName))
		if tags.skip {
			continue
		}

		// Promote fields of embedded structs
		if field.Anonymous {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				w.collect(ft)
				continue
			}
		}

		if !field.IsExported() || field.Type.Kind() != reflect.String || !w.keep(tags) {
			continue
		}

		name := field.Name
		if tags.env != "" {
			name = tags.env
		}
		if w.seen[name] {
			continue
		}
		w.seen[name] = true
		w.names = append(w.names, name)
	}
}
