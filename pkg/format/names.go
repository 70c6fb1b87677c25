package format

import (
	"fmt"
	"strings"

	"github.com/agentstation/taxamark/pkg/constants"
	"github.com/agentstation/taxamark/pkg/errors"
	"github.com/agentstation/taxamark/pkg/taxa"
)

// NamesOptions controls how a list of taxon names is rendered.
type NamesOptions struct {
	NameOptions

	// Format wraps the joined names. It must contain exactly one "%s".
	// Empty means "%s".
	Format string

	// MaxLen bounds the wrapped output in characters. 0 means unbounded.
	MaxLen int
}

// Names formats each taxon with Name and joins the results with ", ", or
// " > " in hierarchy mode. With a MaxLen set, names that do not fit are
// replaced by "and N more", dropping already accepted names until the
// placeholder fits too. A budget that cannot hold even the placeholder
// yields a BudgetError.
func Names(list []taxa.Taxon, opts NamesOptions) (string, error) {
	wrapper := opts.Format
	if wrapper == "" {
		wrapper = constants.NamesPlaceholder
	}
	if strings.Count(wrapper, constants.NamesPlaceholder) != 1 {
		return "", errors.NewValidationError("format", wrapper,
			fmt.Sprintf("must contain exactly one %q", constants.NamesPlaceholder))
	}
	if opts.MaxLen < 0 {
		return "", errors.NewValidationError("max_len", opts.MaxLen, "must not be negative")
	}

	delimiter := constants.ListDelimiter
	if opts.Hierarchy {
		delimiter = constants.HierarchyDelimiter
	}

	names := make([]string, 0, len(list))
	for i := range list {
		name, err := Name(&list[i], opts.NameOptions)
		if err != nil {
			return "", err
		}
		names = append(names, name)
	}

	if opts.MaxLen > 0 {
		available := opts.MaxLen - (runeLen(wrapper) - runeLen(constants.NamesPlaceholder))
		fit, err := fitNames(names, delimiter, available)
		if err != nil {
			var budget *errors.BudgetError
			if errors.As(err, &budget) {
				budget.MaxLen = opts.MaxLen
			}
			return "", err
		}
		names = fit
	}

	return strings.Replace(wrapper, constants.NamesPlaceholder, strings.Join(names, delimiter), 1), nil
}

// fitNames keeps the longest prefix of names that fits in available
// characters when joined with delimiter. If any name is left out, the result
// ends with a "and N more" entry and the whole still fits.
func fitNames(names []string, delimiter string, available int) ([]string, error) {
	delimLen := runeLen(delimiter)
	fit := make([]string, 0, len(names))
	// used counts every accepted name plus the delimiter that follows it.
	used := 0

	for _, name := range names {
		if used+runeLen(name) <= available {
			fit = append(fit, name)
			used += runeLen(name) + delimLen
			continue
		}

		remaining := len(names) - len(fit)
		placeholder := moreNames(remaining)
		for used+runeLen(placeholder) > available {
			if len(fit) == 0 {
				return nil, errors.NewBudgetError(available, available, placeholder)
			}
			last := fit[len(fit)-1]
			fit = fit[:len(fit)-1]
			used -= runeLen(last) + delimLen
			remaining++
			placeholder = moreNames(remaining)
		}
		return append(fit, placeholder), nil
	}
	return fit, nil
}

func moreNames(n int) string {
	return fmt.Sprintf("and %d more", n)
}
