package utils

import (
	"errors"
	"net/url"
	"strings"
)

var ErrInvalidURL = errors.New("o link fornecido não é um URL válido")

// NormalizeSocialURL garante esquema https:// e valida o link antes de salvar.
// Links sem esquema ganham o prefixo automaticamente; lixo tipo "not a url"
// continua sendo recusado mesmo depois do prefixo.
func NormalizeSocialURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" {
		return "", ErrInvalidURL
	}
	return raw, nil
}

// WhatsAppLink monta o deep link wa.me a partir do número cadastrado
func WhatsAppLink(number string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + digits.String()
}
