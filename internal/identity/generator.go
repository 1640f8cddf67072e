package identity

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/taalentio/talent-api/internal/shared/logger"
)

// Variant selects the code layout of an entity kind.
type Variant string

const (
	// VariantGeneral: origin country, gender, sequence, residence city (MAF0001CAS).
	VariantGeneral Variant = "general"
	// VariantCinema: residence country, residence city, sequence, gender (MACAS0001F).
	VariantCinema Variant = "cinema"
	// VariantProject: origin country, production initials, project id, per-project
	// sequence (MAABC007001).
	VariantProject Variant = "project"
)

// DefaultCollisionAttempts bounds the collision retry of the general variant.
const DefaultCollisionAttempts = 10

type scopeKind int

const (
	scopeCountry scopeKind = iota
	scopeProject
)

type variantRule struct {
	layout layout
	scope  scopeKind
	// retryOnCollision enables the existence check with incrementing sequence.
	retryOnCollision bool
}

var variants = map[Variant]variantRule{
	VariantGeneral: {
		layout:           layout{country(), gender(), sequence(4), locality()},
		scope:            scopeCountry,
		retryOnCollision: true,
	},
	VariantCinema: {
		layout: layout{country(), locality(), sequence(4), gender()},
		scope:  scopeCountry,
	},
	VariantProject: {
		layout: layout{country(), initials(), projectID(), sequence(3)},
		scope:  scopeProject,
	},
}

// ParseVariant validates a variant name.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if _, ok := variants[v]; !ok {
		return "", fmt.Errorf("variant %q: %w", s, ErrUnknownVariant)
	}
	return v, nil
}

// Attributes are the raw classification inputs of a new entity.
type Attributes struct {
	// Country is a country name or ISO-2 code.
	Country string
	// Locality is the residence city, or the production company name for
	// project codes.
	Locality string
	Gender   string
	// ProjectID scopes project codes.
	ProjectID uint32
}

// Scope identifies the existing codes a new sequence is computed against.
type Scope struct {
	// Prefix is the country code for general and cinema codes.
	Prefix string
	// ProjectID is set for project codes.
	ProjectID uint32
}

// Lookup is supplied by the persistence layer of the entity table.
type Lookup interface {
	// CodesInScope returns every persisted code in the scope.
	CodesInScope(ctx context.Context, scope Scope) ([]string, error)
	// CodeExists reports whether code is already assigned.
	CodeExists(ctx context.Context, code string) (bool, error)
}

var (
	codesGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taalentio_identity_codes_generated_total",
			Help: "Identity codes generated, by variant.",
		},
		[]string{"variant"},
	)

	codeCollisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taalentio_identity_code_collisions_total",
			Help: "Generated identity codes that were already assigned, by variant.",
		},
		[]string{"variant"},
	)
)

func init() {
	prometheus.MustRegister(codesGenerated, codeCollisions)
}

// Generator assigns identity codes. It holds no per-scope state; the next
// sequence is derived from the codes the Lookup returns.
type Generator struct {
	collisionAttempts int
}

func NewGenerator() *Generator {
	return &Generator{collisionAttempts: DefaultCollisionAttempts}
}

// Generate computes the next code for attrs. It has no side effects; the caller
// persists the code.
func (g *Generator) Generate(ctx context.Context, variant Variant, attrs Attributes, lookup Lookup) (string, error) {
	rule, ok := variants[variant]
	if !ok {
		return "", fmt.Errorf("variant %q: %w", variant, ErrUnknownVariant)
	}

	f := resolve(variant, attrs)
	scope := Scope{Prefix: f.country}
	if rule.scope == scopeProject {
		scope = Scope{ProjectID: f.projectID}
	}

	existing, err := lookup.CodesInScope(ctx, scope)
	if err != nil {
		return "", fmt.Errorf("list codes in scope: %w", err)
	}

	maxSeq := 0
	for _, code := range existing {
		if seq, ok := rule.layout.sequence(code); ok && seq > maxSeq {
			maxSeq = seq
		}
	}
	next := maxSeq + 1

	if !rule.retryOnCollision {
		code, err := rule.layout.encode(f, next)
		if err != nil {
			return "", err
		}
		codesGenerated.WithLabelValues(string(variant)).Inc()
		return code, nil
	}

	log := logger.FromContext(ctx)
	for attempt := 0; attempt < g.collisionAttempts; attempt++ {
		code, err := rule.layout.encode(f, next+attempt)
		if err != nil {
			return "", err
		}

		exists, err := lookup.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code existence: %w", err)
		}
		if !exists {
			codesGenerated.WithLabelValues(string(variant)).Inc()
			return code, nil
		}

		codeCollisions.WithLabelValues(string(variant)).Inc()
		log.Warn("Code d'identification déjà attribué, nouvel essai",
			"variant", variant, "code", code, "attempt", attempt+1)
	}

	return "", fmt.Errorf("no free %s code after %d attempts in scope %s: %w",
		variant, g.collisionAttempts, scope.Prefix, ErrCodeSpaceExhausted)
}

func resolve(variant Variant, attrs Attributes) fields {
	f := fields{
		country:   ResolveCountry(attrs.Country),
		gender:    NormalizeGender(attrs.Gender),
		projectID: attrs.ProjectID,
	}
	if variant == VariantProject {
		f.initials = ProductionInitials(attrs.Locality)
	} else {
		f.locality = NormalizeToken(attrs.Locality, 3)
	}
	return f
}

// Decoded is the human-readable content of an identity code.
type Decoded struct {
	Variant   Variant `json:"variant"`
	Country   string  `json:"country"`
	Gender    string  `json:"gender,omitempty"`
	Locality  string  `json:"locality,omitempty"`
	Initials  string  `json:"initials,omitempty"`
	ProjectID uint32  `json:"projectId,omitempty"`
	Sequence  int     `json:"sequence"`
}

// Decode splits a code of the given variant back into its fields.
func Decode(variant Variant, code string) (*Decoded, error) {
	rule, ok := variants[variant]
	if !ok {
		return nil, fmt.Errorf("variant %q: %w", variant, ErrUnknownVariant)
	}

	parts, ok := rule.layout.split(code)
	if !ok {
		return nil, fmt.Errorf("code %q as %s: %w", code, variant, ErrMalformedCode)
	}

	seq, _ := strconv.Atoi(parts[segSequence])
	d := &Decoded{
		Variant:  variant,
		Country:  parts[segCountry],
		Gender:   parts[segGender],
		Locality: parts[segLocality],
		Initials: parts[segInitials],
		Sequence: seq,
	}
	if raw, ok := parts[segProjectID]; ok {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("code %q project id: %w", code, ErrMalformedCode)
		}
		d.ProjectID = uint32(id)
	}
	return d, nil
}
