// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QuestionFilter narrows the admin listing.
type QuestionFilter string

const (
	FilterAll        QuestionFilter = "all"
	FilterUnanswered QuestionFilter = "unanswered"
	FilterAnswered   QuestionFilter = "answered"
	FilterPending    QuestionFilter = "pending"
)

// ParseQuestionFilter maps a query-string value to a filter.
// Unknown and empty values fall back to FilterAll.
func ParseQuestionFilter(s string) QuestionFilter {
	switch f := QuestionFilter(s); f {
	case FilterUnanswered, FilterAnswered, FilterPending:
		return f
	default:
		return FilterAll
	}
}

// Filters returns every filter in display order.
func Filters() []QuestionFilter {
	return []QuestionFilter{FilterAll, FilterUnanswered, FilterAnswered, FilterPending}
}

// Audience tells the listing engine who is asking.
type Audience int

const (
	AudiencePublic Audience = iota
	AudienceAdmin
)

const (
	PublicPageSize = 10
	AdminPageSize  = 20
)

// PageSize returns the fixed page size for the audience.
func (a Audience) PageSize() int {
	if a == AudienceAdmin {
		return AdminPageSize
	}
	return PublicPageSize
}

// ListRequest is the already type-coerced listing input coming from the
// routing layer.
type ListRequest struct {
	Page     int
	Filter   QuestionFilter
	Audience Audience
}

// QuestionQuery is the storage-level form of a listing: predicates plus an
// offset/limit window. A zero Limit means "no window" and is used for counts.
type QuestionQuery struct {
	OnlyApproved bool
	Filter       QuestionFilter
	Limit        uint64
	Offset       uint64
}

// Pagination is the navigation metadata returned with every listing.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	TotalItems int  `json:"total_items"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// PrevPage returns the previous page number, or 0 when there is none.
func (p Pagination) PrevPage() int {
	if !p.HasPrev {
		return 0
	}
	return p.Page - 1
}

// NextPage returns the next page number, or 0 when there is none.
func (p Pagination) NextPage() int {
	if !p.HasNext {
		return 0
	}
	return p.Page + 1
}

// QuestionPage is the result of a listing. When RedirectPage is positive the
// caller must redirect to that page instead of rendering Questions.
type QuestionPage struct {
	Questions    []Question `json:"questions"`
	Pagination   Pagination `json:"pagination"`
	RedirectPage int        `json:"-"`
}

// IsRedirect reports whether the listing asks for a redirect.
func (p QuestionPage) IsRedirect() bool {
	return p.RedirectPage > 0
}
