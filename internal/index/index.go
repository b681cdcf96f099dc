// Package index provides the in-memory queryable view over verified
// records: O(1) exact lookup by (issuer, cert_number) and bounded
// approximate lookup by student name.
//
// The index is the only shared mutable state in the engine. It follows a
// multiple-reader/single-writer discipline: lookups take a read lock,
// upsert/revoke/reload take the write lock for the duration of their own
// update only. Readers receive copies and never observe a partially-written
// record.
package index

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/certverify/internal/common"
	"github.com/dmitrijs2005/certverify/internal/match"
	"github.com/dmitrijs2005/certverify/internal/normalize"
	"github.com/dmitrijs2005/certverify/internal/server/models"
)

// DefaultTopK bounds the candidate list returned by name lookup.
const DefaultTopK = 10

type exactKey struct {
	issuer     string
	certNumber string
}

// Loader supplies a snapshot of verified records, typically backed by the
// persistence collaborator.
type Loader interface {
	LoadAll(ctx context.Context) ([]models.VerifiedRecord, error)
}

// RecordIndex is safe for concurrent use.
type RecordIndex struct {
	mu    sync.RWMutex
	ready bool // a snapshot load has succeeded
	byID  map[string]models.VerifiedRecord
	byKey map[exactKey]string        // composite key → record ID
	grams map[string]map[string]bool // name trigram → record IDs
}

func NewRecordIndex() *RecordIndex {
	return &RecordIndex{
		byID:  make(map[string]models.VerifiedRecord),
		byKey: make(map[exactKey]string),
		grams: make(map[string]map[string]bool),
	}
}

// LookupExact returns the record with the given cert number and issuer.
// Both arguments are canonicalized before key comparison.
func (ix *RecordIndex) LookupExact(certNumber, issuer string) (models.VerifiedRecord, bool) {
	key := exactKey{issuer: normalize.Key(issuer), certNumber: normalize.Key(certNumber)}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	id, ok := ix.byKey[key]
	if !ok {
		return models.VerifiedRecord{}, false
	}
	return ix.byID[id], true
}

// LookupByID returns the record with the given ID.
func (ix *RecordIndex) LookupByID(recordID string) (models.VerifiedRecord, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	rec, ok := ix.byID[recordID]
	return rec, ok
}

// LookupByName returns up to k records ordered by descending name
// similarity; ties break by most recent issued_at, then ascending record ID
// so results are deterministic. An empty issuer matches all issuers;
// k <= 0 applies DefaultTopK.
func (ix *RecordIndex) LookupByName(name, issuer string, k int) []models.VerifiedRecord {
	if k <= 0 {
		k = DefaultTopK
	}
	nameKey := normalize.Key(name)
	issuerKey := normalize.Key(issuer)

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	// Trigram prefilter keeps the similarity scan linear in candidates,
	// not in the whole index.
	seen := make(map[string]bool)
	for _, g := range trigrams(nameKey) {
		for id := range ix.grams[g] {
			seen[id] = true
		}
	}

	type scored struct {
		rec models.VerifiedRecord
		sim float64
	}
	candidates := make([]scored, 0, len(seen))
	for id := range seen {
		rec := ix.byID[id]
		if issuerKey != "" && normalize.Key(rec.Issuer) != issuerKey {
			continue
		}
		sim := match.Similarity(nameKey, normalize.Key(rec.StudentName))
		if sim <= 0 {
			continue
		}
		candidates = append(candidates, scored{rec: rec, sim: sim})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].sim != candidates[j].sim {
			return candidates[i].sim > candidates[j].sim
		}
		if !candidates[i].rec.IssuedAt.Equal(candidates[j].rec.IssuedAt) {
			return candidates[i].rec.IssuedAt.After(candidates[j].rec.IssuedAt)
		}
		return candidates[i].rec.RecordID < candidates[j].rec.RecordID
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	out := make([]models.VerifiedRecord, len(candidates))
	for i, c := range candidates {
		out[i] = c.rec
	}
	return out
}

// Upsert inserts or replaces a record by record ID. A different record
// already holding the same (issuer, cert_number) key is a conflict:
// common.ErrDuplicateCertNumber.
func (ix *RecordIndex) Upsert(rec models.VerifiedRecord) error {
	key := exactKey{issuer: normalize.Key(rec.Issuer), certNumber: normalize.Key(rec.CertNumber)}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if existingID, ok := ix.byKey[key]; ok && existingID != rec.RecordID {
		return common.ErrDuplicateCertNumber
	}

	if old, ok := ix.byID[rec.RecordID]; ok {
		ix.removeLocked(old)
	}
	ix.byID[rec.RecordID] = rec
	ix.byKey[key] = rec.RecordID
	ix.addGramsLocked(rec)
	return nil
}

// Revoke transitions a record to revoked status. Records are never deleted.
func (ix *RecordIndex) Revoke(recordID string) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	rec, ok := ix.byID[recordID]
	if !ok {
		return common.ErrNotFound
	}
	rec.Status = models.RecordStatusRevoked
	ix.byID[recordID] = rec
	return nil
}

// ReloadFrom rebuilds the index from a persistence snapshot and swaps it in
// atomically. Lookups running during the rebuild keep seeing the old state.
func (ix *RecordIndex) ReloadFrom(ctx context.Context, loader Loader) error {
	records, err := loader.LoadAll(ctx)
	if err != nil {
		return common.ErrIndexUnavailable
	}

	byID := make(map[string]models.VerifiedRecord, len(records))
	byKey := make(map[exactKey]string, len(records))
	grams := make(map[string]map[string]bool)
	for _, rec := range records {
		byID[rec.RecordID] = rec
		byKey[exactKey{issuer: normalize.Key(rec.Issuer), certNumber: normalize.Key(rec.CertNumber)}] = rec.RecordID
		for _, g := range trigrams(normalize.Key(rec.StudentName)) {
			if grams[g] == nil {
				grams[g] = make(map[string]bool)
			}
			grams[g][rec.RecordID] = true
		}
	}

	ix.mu.Lock()
	ix.byID = byID
	ix.byKey = byKey
	ix.grams = grams
	ix.ready = true
	ix.mu.Unlock()
	return nil
}

// Ready reports whether a snapshot reload has succeeded. Before that the
// index holds at best a partial view of the record store and would misreport
// held records as unknown, so callers must refuse to classify instead.
// Incremental writes alone never make the index ready.
func (ix *RecordIndex) Ready() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.ready
}

// Len returns the number of records currently indexed.
func (ix *RecordIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.byID)
}

func (ix *RecordIndex) addGramsLocked(rec models.VerifiedRecord) {
	for _, g := range trigrams(normalize.Key(rec.StudentName)) {
		if ix.grams[g] == nil {
			ix.grams[g] = make(map[string]bool)
		}
		ix.grams[g][rec.RecordID] = true
	}
}

func (ix *RecordIndex) removeLocked(rec models.VerifiedRecord) {
	delete(ix.byKey, exactKey{issuer: normalize.Key(rec.Issuer), certNumber: normalize.Key(rec.CertNumber)})
	for _, g := range trigrams(normalize.Key(rec.StudentName)) {
		delete(ix.grams[g], rec.RecordID)
		if len(ix.grams[g]) == 0 {
			delete(ix.grams, g)
		}
	}
	delete(ix.byID, rec.RecordID)
}

// trigrams returns the padded character trigrams of s. Short inputs fall
// back to the whole string so two-letter names still index.
func trigrams(s string) []string {
	if s == "" {
		return nil
	}
	padded := "  " + s + " "
	if len(padded) < 3 {
		return []string{padded}
	}
	out := make([]string, 0, len(padded)-2)
	seen := make(map[string]bool, len(padded)-2)
	for i := 0; i+3 <= len(padded); i++ {
		g := padded[i : i+3]
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}
