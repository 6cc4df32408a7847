package bank

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/pavelanni/diagnostic/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the bank invariants: unique IDs, a known subject and topic for every
// question, four options a-d, and a correct answer that is one of the options.
// All problems are reported together.
func Validate(b *Bank) error {
	var errs []error
	seen := make(map[string]bool)

	b.each(func(q model.Question) {
		if seen[q.ID] {
			errs = append(errs, fmt.Errorf("question %q: duplicate id", q.ID))
		}
		seen[q.ID] = true

		if err := validate.Struct(q); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					errs = append(errs, fmt.Errorf("question %q: field %s fails %q", q.ID, fe.Field(), fe.Tag()))
				}
			} else {
				errs = append(errs, fmt.Errorf("question %q: %w", q.ID, err))
			}
		}

		for _, k := range model.OptionKeys {
			if _, ok := q.Options[k]; !ok {
				errs = append(errs, fmt.Errorf("question %q: missing option %q", q.ID, k))
			}
		}
		if _, ok := q.Options[q.CorrectAnswer]; !ok {
			errs = append(errs, fmt.Errorf("question %q: correct answer %q is not an option", q.ID, q.CorrectAnswer))
		}
	})

	for _, s := range model.Subjects {
		if len(b.bySubject[s]) == 0 {
			errs = append(errs, fmt.Errorf("subject %q has no questions", s))
		}
	}

	return errors.Join(errs...)
}
