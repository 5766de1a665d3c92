package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const InvalidResponseMessage = "Invalid response."

// Chooser is a line-oriented conversation with the user.
type Chooser interface {
	Ask(ctx context.Context, prompt string) (string, error)
	Say(message string) error
}

// Choice lists the element types PromptChoice can hand back.
type Choice interface {
	int | float64 | string
}

// PromptChoice asks until the response matches one of allowed, ignoring case,
// and returns the matching element.
func PromptChoice[T Choice](ctx context.Context, chooser Chooser, prompt string, allowed []T, errorMessage string) (T, error) {
	var zero T

	for {
		response, err := chooser.Ask(ctx, prompt)
		if err != nil {
			return zero, err
		}

		value, err := Match(response, allowed)
		if err == nil {
			return value, nil
		}

		if err = chooser.Say(errorMessage); err != nil {
			return zero, err
		}
	}
}

// Match returns the element of allowed whose text equals response, ignoring case
// and surrounding spaces. It fails with apperror.ErrInvalidUserResponse otherwise.
func Match[T Choice](response string, allowed []T) (T, error) {
	normalized := strings.ToUpper(strings.TrimSpace(response))
	for _, value := range allowed {
		if strings.ToUpper(fmt.Sprint(value)) == normalized {
			return value, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("%w: %q", apperror.ErrInvalidUserResponse, response)
}
