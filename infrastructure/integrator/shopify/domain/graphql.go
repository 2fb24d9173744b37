package domain

import (
	"fmt"
	"strings"
)

// GraphQLRequest é o envelope enviado ao endpoint graphql.json da Admin API.
type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// GraphQLError é um erro de nível de documento retornado pela Admin API.
type GraphQLError struct {
	Message string `json:"message"`
}

// UserError é um erro de campo retornado por mutações (userErrors).
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// UserErrorsError agrega os userErrors de uma mutação em um erro Go.
type UserErrorsError struct {
	Action string
	Errors []UserError
}

func (e *UserErrorsError) Error() string {
	if e == nil {
		return "erro de userErrors da Admin API"
	}

	parts := make([]string, 0, len(e.Errors))
	for _, userErr := range e.Errors {
		field := strings.Join(userErr.Field, ".")
		if field == "" {
			parts = append(parts, userErr.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, userErr.Message))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("mutação %s falhou com userErrors", e.Action)
	}

	return fmt.Sprintf("mutação %s falhou: %s", e.Action, strings.Join(parts, "; "))
}
