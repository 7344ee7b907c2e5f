package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/harentsoaR/tabibi-api/internal/models"
)

// DoctorSource is the part of the store the directory reads from.
type DoctorSource interface {
	ListDoctors(ctx context.Context, q string) ([]models.User, error)
	DoctorByID(ctx context.Context, id string) (*models.User, error)
}

// ListingCache holds the full, unfiltered doctor listing. StoreDoctors only
// writes when no Invalidate happened since Generation returned gen.
type ListingCache interface {
	Doctors(ctx context.Context) ([]models.User, bool, error)
	Generation(ctx context.Context) (int64, error)
	StoreDoctors(ctx context.Context, gen int64, doctors []models.User) (bool, error)
	Invalidate(ctx context.Context) error
}

// Directory answers doctor searches, from the cached listing when a cache is
// configured and from the store query otherwise.
type Directory struct {
	source DoctorSource
	cache  ListingCache
	log    zerolog.Logger
}

// NewDirectory builds a Directory. cache may be nil.
func NewDirectory(source DoctorSource, cache ListingCache, log zerolog.Logger) *Directory {
	return &Directory{source: source, cache: cache, log: log}
}

func (d *Directory) Search(ctx context.Context, q string) ([]models.User, error) {
	q = strings.TrimSpace(q)
	if d.cache == nil {
		return d.source.ListDoctors(ctx, q)
	}

	all, ok, err := d.cache.Doctors(ctx)
	if err != nil {
		d.log.Warn().Err(err).Msg("directory cache read failed, querying store")
		return d.source.ListDoctors(ctx, q)
	}
	if !ok {
		gen, err := d.cache.Generation(ctx)
		if err != nil {
			d.log.Warn().Err(err).Msg("directory cache read failed, querying store")
			return d.source.ListDoctors(ctx, q)
		}
		if all, err = d.source.ListDoctors(ctx, ""); err != nil {
			return nil, err
		}
		stored, err := d.cache.StoreDoctors(ctx, gen, all)
		if err != nil {
			d.log.Warn().Err(err).Msg("directory cache write failed")
		} else if !stored {
			d.log.Debug().Msg("directory changed while loading, listing not cached")
		}
	}
	return FilterDoctors(all, q), nil
}

func (d *Directory) Doctor(ctx context.Context, id string) (*models.User, error) {
	return d.source.DoctorByID(ctx, id)
}

// Invalidate drops the cached listing after any write that can change it.
func (d *Directory) Invalidate(ctx context.Context) {
	if d.cache == nil {
		return
	}
	if err := d.cache.Invalidate(ctx); err != nil {
		d.log.Warn().Err(err).Msg("directory cache invalidation failed")
	}
}

// FilterDoctors keeps the doctors matching q, preserving order.
func FilterDoctors(doctors []models.User, q string) []models.User {
	q = strings.TrimSpace(q)
	if q == "" {
		return doctors
	}
	out := make([]models.User, 0, len(doctors))
	for _, doc := range doctors {
		if MatchesDoctor(doc, q) {
			out = append(out, doc)
		}
	}
	return out
}

// MatchesDoctor reports whether the doctor's name, specialization or email
// contains q, ignoring case. This is the same rule the store query applies.
func MatchesDoctor(doc models.User, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(doc.Name), q) || strings.Contains(strings.ToLower(doc.Email), q) {
		return true
	}
	return doc.Profile != nil && strings.Contains(strings.ToLower(doc.Profile.Specialization), q)
}
