// Package bank holds the catalogue of diagnostic questions.
package bank

import (
	"encoding/json"
	"fmt"
	"maps"
	"sync"

	"github.com/pavelanni/diagnostic/internal/model"
)

// Bank is an immutable set of questions grouped by subject.
type Bank struct {
	bySubject map[model.Subject][]model.Question
	byID      map[string]model.Question
	info      map[model.Subject]model.SubjectInfo
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Default returns the compiled-in question bank.
func Default() *Bank {
	defaultOnce.Do(func() {
		defaultBank = New(builtinQuestions(), builtinInfo())
	})
	return defaultBank
}

// New builds a bank from the given questions. Questions keep their relative order
// within a subject. Subjects missing from info get their name as title.
// Inputs are copied; later changes to them do not affect the bank.
func New(questions []model.Question, info map[model.Subject]model.SubjectInfo) *Bank {
	b := &Bank{
		bySubject: make(map[model.Subject][]model.Question, len(model.Subjects)),
		byID:      make(map[string]model.Question, len(questions)),
		info:      make(map[model.Subject]model.SubjectInfo, len(model.Subjects)),
	}
	for _, q := range questions {
		q.Options = maps.Clone(q.Options)
		b.bySubject[q.Subject] = append(b.bySubject[q.Subject], q)
		b.byID[q.ID] = q
	}
	for _, s := range model.Subjects {
		si, ok := info[s]
		if !ok {
			si = model.SubjectInfo{Title: string(s)}
		}
		si.Subject = s
		si.NumQuestions = len(b.bySubject[s])
		b.info[s] = si
	}
	return b
}

// Parse decodes a JSON array of questions and validates the resulting bank.
// Subject metadata is taken from the built-in bank.
func Parse(data []byte) (*Bank, error) {
	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	b := New(questions, builtinInfo())
	if err := Validate(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Questions returns the questions of one subject in bank order.
func (b *Bank) Questions(s model.Subject) []model.Question {
	return cloneQuestions(b.bySubject[s])
}

// All returns every question grouped by subject.
func (b *Bank) All() map[model.Subject][]model.Question {
	out := make(map[model.Subject][]model.Question, len(model.Subjects))
	for _, s := range model.Subjects {
		out[s] = b.Questions(s)
	}
	return out
}

// Question looks up a question by ID.
func (b *Bank) Question(id string) (model.Question, bool) {
	q, ok := b.byID[id]
	if ok {
		q.Options = maps.Clone(q.Options)
	}
	return q, ok
}

// Info returns the descriptive metadata of every subject.
func (b *Bank) Info() map[model.Subject]model.SubjectInfo {
	return maps.Clone(b.info)
}

// SubjectInfo returns the metadata of one subject.
func (b *Bank) SubjectInfo(s model.Subject) model.SubjectInfo {
	return b.info[s]
}

// Len returns the total number of questions.
func (b *Bank) Len() int {
	n := 0
	for _, qs := range b.bySubject {
		n += len(qs)
	}
	return n
}

// each calls fn for every question in canonical subject order without copying.
func (b *Bank) each(fn func(model.Question)) {
	for _, s := range model.Subjects {
		for _, q := range b.bySubject[s] {
			fn(q)
		}
	}
	for s, qs := range b.bySubject {
		if s.Valid() {
			continue
		}
		for _, q := range qs {
			fn(q)
		}
	}
}

func cloneQuestions(qs []model.Question) []model.Question {
	out := make([]model.Question, len(qs))
	for i, q := range qs {
		q.Options = maps.Clone(q.Options)
		out[i] = q
	}
	return out
}
