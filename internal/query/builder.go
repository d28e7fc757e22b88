// Package query turns URL query parameters into MongoDB find specifications.
//
// A request such as
//
//	/tours?difficulty=easy&duration[gte]=5&sort=-price,ratingsAverage&fields=name,price&page=2&limit=10
//
// becomes a filter, a sort order, a projection and a skip/limit window:
//
//	spec := query.New(c.Request.URL.Query()).Filter().Sort().LimitFields().Paginate().Build()
//	cursor, err := coll.Find(ctx, spec.Filter, spec.FindOptions())
package query

import (
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	DefaultSort  = "-createdAt"

	// VersionField is the internal document version, hidden by default.
	VersionField = "__v"
)

var reserved = map[string]struct{}{
	"page":   {},
	"sort":   {},
	"limit":  {},
	"fields": {},
}

var operators = map[string]string{
	"gte": "$gte",
	"gt":  "$gt",
	"lte": "$lte",
	"lt":  "$lt",
}

var (
	bracketKey = regexp.MustCompile(`^([^\[\]]+)\[([^\[\]]+)\]$`)
	numeric    = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// Spec is a complete data-fetch request for one collection.
type Spec struct {
	Filter     bson.M
	Sort       bson.D
	Projection bson.D
	Skip       int64
	Limit      int64
}

// FindOptions converts the spec into driver find options.
func (s Spec) FindOptions() *options.FindOptions {
	opts := options.Find()
	if len(s.Sort) > 0 {
		opts.SetSort(s.Sort)
	}
	if len(s.Projection) > 0 {
		opts.SetProjection(s.Projection)
	}
	if s.Skip > 0 {
		opts.SetSkip(s.Skip)
	}
	if s.Limit > 0 {
		opts.SetLimit(s.Limit)
	}
	return opts
}

// Option configures a Builder.
type Option func(*Builder)

// WithAllowedFields restricts filter keys to the given fields. Unknown keys
// are dropped silently.
func WithAllowedFields(fields ...string) Option {
	return func(b *Builder) {
		b.allowed = toSet(fields)
	}
}

// WithMultiValueFields lists fields where repeated parameters turn into an
// $in filter. For every other field the last value wins.
func WithMultiValueFields(fields ...string) Option {
	return func(b *Builder) {
		b.multi = toSet(fields)
	}
}

// WithMaxLimit caps the page size.
func WithMaxLimit(limit int) Option {
	return func(b *Builder) {
		if limit > 0 {
			b.maxLimit = int64(limit)
		}
	}
}

// WithBase adds a scope filter that is always applied in addition to the
// caller supplied filter.
func WithBase(filter bson.M) Option {
	return func(b *Builder) {
		b.base = mergeScopes(b.base, filter)
	}
}

// WithDefaultSort overrides the order used when no sort parameter is given.
func WithDefaultSort(sortParam string) Option {
	return func(b *Builder) {
		b.defaultSort = sortParam
	}
}

// Builder accumulates the parts of a Spec. Each step returns the builder so
// calls can be chained; Build returns the composed result.
type Builder struct {
	values      url.Values
	allowed     map[string]struct{}
	multi       map[string]struct{}
	maxLimit    int64
	base        bson.M
	defaultSort string

	filter     bson.M
	sort       bson.D
	projection bson.D
	skip       int64
	limit      int64
}

// New creates a builder over the given query parameters.
func New(values url.Values, opts ...Option) *Builder {
	b := &Builder{
		values:      values,
		defaultSort: DefaultSort,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Filter builds the filter predicate from every non-reserved parameter.
func (b *Builder) Filter() *Builder {
	filter := bson.M{}

	keys := make([]string, 0, len(b.values))
	for key := range b.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := reserved[key]; ok {
			continue
		}
		vals := b.values[key]
		if len(vals) == 0 {
			continue
		}

		field, op := key, ""
		if m := bracketKey.FindStringSubmatch(key); m != nil {
			field, op = m[1], m[2]
		}
		if !b.fieldAllowed(field) || strings.HasPrefix(op, "$") {
			continue
		}

		if op == "" {
			addEquality(filter, field, b.equalityValue(field, vals))
			continue
		}

		last := coerce(vals[len(vals)-1])
		if mongoOp, ok := operators[op]; ok {
			addOperator(filter, field, mongoOp, last)
		} else {
			// Unknown operators stay literal sub-document keys.
			addOperator(filter, field, op, last)
		}
	}

	b.filter = filter
	return b
}

// Sort builds the sort order from a comma separated list where a leading
// "-" means descending.
func (b *Builder) Sort() *Builder {
	raw := b.last("sort")
	if raw == "" {
		raw = b.defaultSort
	}

	var order bson.D
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		direction := 1
		if strings.HasPrefix(part, "-") {
			direction = -1
			part = strings.TrimSpace(part[1:])
		}
		if part == "" || strings.Contains(part, "$") {
			continue
		}
		order = append(order, bson.E{Key: part, Value: direction})
	}

	b.sort = order
	return b
}

// LimitFields builds the projection. Without a fields parameter only the
// version field is hidden.
func (b *Builder) LimitFields() *Builder {
	raw := b.last("fields")
	if raw == "" {
		b.projection = bson.D{{Key: VersionField, Value: 0}}
		return b
	}

	var include, exclude bson.D
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "-") {
			if name := strings.TrimSpace(part[1:]); name != "" && !strings.Contains(name, "$") {
				exclude = append(exclude, bson.E{Key: name, Value: 0})
			}
			continue
		}
		if part != "" && !strings.Contains(part, "$") {
			include = append(include, bson.E{Key: part, Value: 1})
		}
	}

	// MongoDB rejects mixed projections except for _id.
	if len(include) > 0 {
		for _, e := range exclude {
			if e.Key == "_id" {
				include = append(include, e)
			}
		}
		b.projection = include
		return b
	}
	b.projection = exclude
	return b
}

// Paginate builds the skip/limit window from page and limit.
func (b *Builder) Paginate() *Builder {
	page := parsePositive(b.last("page"), DefaultPage)
	limit := parsePositive(b.last("limit"), DefaultLimit)
	if b.maxLimit > 0 && limit > b.maxLimit {
		limit = b.maxLimit
	}
	// Past this page the skip no longer fits in an int64
	if maxPage := math.MaxInt64 / limit; page > maxPage {
		page = maxPage
	}

	b.skip = (page - 1) * limit
	b.limit = limit
	return b
}

// Build returns the composed spec. Steps that were not called leave their
// part empty; the base scope is always applied.
func (b *Builder) Build() Spec {
	return Spec{
		Filter:     mergeScopes(b.base, b.filter),
		Sort:       b.sort,
		Projection: b.projection,
		Skip:       b.skip,
		Limit:      b.limit,
	}
}

func (b *Builder) fieldAllowed(field string) bool {
	if field == "" || strings.Contains(field, "$") {
		return false
	}
	if b.allowed == nil {
		return true
	}
	_, ok := b.allowed[field]
	return ok
}

func (b *Builder) equalityValue(field string, vals []string) interface{} {
	if _, ok := b.multi[field]; ok && len(vals) > 1 {
		in := bson.A{}
		for _, v := range vals {
			in = append(in, coerce(v))
		}
		return bson.M{"$in": in}
	}
	return coerce(vals[len(vals)-1])
}

func (b *Builder) last(key string) string {
	vals := b.values[key]
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[len(vals)-1])
}

func addEquality(filter bson.M, field string, value interface{}) {
	if existing, ok := filter[field].(bson.M); ok {
		if in, isIn := value.(bson.M); isIn {
			for k, v := range in {
				existing[k] = v
			}
			return
		}
		existing["$eq"] = value
		return
	}
	filter[field] = value
}

func addOperator(filter bson.M, field, op string, value interface{}) {
	switch existing := filter[field].(type) {
	case nil:
		filter[field] = bson.M{op: value}
	case bson.M:
		existing[op] = value
	default:
		filter[field] = bson.M{"$eq": existing, op: value}
	}
}

// coerce converts a raw query value to the most specific scalar type.
func coerce(raw string) interface{} {
	switch {
	case numeric.MatchString(raw):
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case raw == "true":
		return true
	case raw == "false":
		return false
	case len(raw) == 24:
		if id, err := primitive.ObjectIDFromHex(raw); err == nil {
			return id
		}
	}
	return raw
}

func parsePositive(raw string, fallback int64) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func mergeScopes(a, b bson.M) bson.M {
	switch {
	case len(a) == 0 && len(b) == 0:
		return bson.M{}
	case len(a) == 0:
		return b
	case len(b) == 0:
		return a
	default:
		return bson.M{"$and": bson.A{a, b}}
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
