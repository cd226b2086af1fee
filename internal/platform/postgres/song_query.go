package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fake-spotify/catalog-api/internal/store"
)

// songColumns is the column list selected for a song row, in scan order.
const songColumns = "s.id, s.title, s.duration, s.country_id, s.created_at, s.updated_at"

// songQuery accumulates the WHERE predicates of a song listing together with
// their positional arguments. The count and page queries share one songQuery
// so they always select the same rows.
type songQuery struct {
	predicates []string
	args       []any
}

// songPredicate contributes at most one predicate to q for a filter field.
type songPredicate func(f store.SongFilter, q *songQuery)

// songPredicates are applied in order; each ignores an absent field.
var songPredicates = []songPredicate{
	func(f store.SongFilter, q *songQuery) {
		if f.GenreID != nil {
			q.where(
				"EXISTS (SELECT 1 FROM genre_song gs WHERE gs.song_id = s.id AND gs.genre_id = %s)",
				*f.GenreID,
			)
		}
	},
	func(f store.SongFilter, q *songQuery) {
		if f.CountryID != nil {
			q.where("s.country_id = %s", *f.CountryID)
		}
	},
	func(f store.SongFilter, q *songQuery) {
		if f.Search != nil && *f.Search != "" {
			q.where("s.title ILIKE %s", likePattern(*f.Search))
		}
	},
	func(f store.SongFilter, q *songQuery) {
		if f.CountryName != nil && *f.CountryName != "" {
			q.where(
				"EXISTS (SELECT 1 FROM countries c WHERE c.id = s.country_id AND c.name ILIKE %s)",
				likePattern(*f.CountryName),
			)
		}
	},
}

// newSongQuery builds the predicates for filter.
func newSongQuery(filter store.SongFilter) *songQuery {
	q := &songQuery{}
	for _, apply := range songPredicates {
		apply(filter, q)
	}
	return q
}

// where appends a predicate. format must contain one %s, which is replaced
// by the placeholder bound to value.
func (q *songQuery) where(format string, value any) {
	q.args = append(q.args, value)
	q.predicates = append(q.predicates, fmt.Sprintf(format, "$"+strconv.Itoa(len(q.args))))
}

func (q *songQuery) whereClause() string {
	if len(q.predicates) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.predicates, " AND ")
}

// countSQL returns the query counting all matching songs.
func (q *songQuery) countSQL() (string, []any) {
	return "SELECT COUNT(*) FROM songs s" + q.whereClause(), q.args
}

// pageSQL returns the query selecting one page of matching songs ordered by ID.
func (q *songQuery) pageSQL(limit, offset int) (string, []any) {
	args := make([]any, len(q.args), len(q.args)+2)
	copy(args, q.args)
	args = append(args, limit, offset)

	query := fmt.Sprintf(
		"SELECT %s FROM songs s%s ORDER BY s.id LIMIT $%d OFFSET $%d",
		songColumns,
		q.whereClause(),
		len(args)-1,
		len(args),
	)
	return query, args
}

// likeEscaper escapes the LIKE metacharacters so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern returns a pattern matching any value containing s.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
