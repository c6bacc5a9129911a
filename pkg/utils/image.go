package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrNotDataURI   = errors.New("a imagem precisa ser enviada como data URI")
	ErrNotImage     = errors.New("envie apenas arquivos de imagem")
	ErrImageTooBig  = errors.New("a imagem excede o tamanho máximo permitido")
	ErrBrokenBase64 = errors.New("não foi possível decodificar a imagem")
)

// ValidateImageDataURI confere o que o formulário confere no navegador:
// o arquivo declara um tipo image/* e o conteúdo decodificado cabe em maxBytes.
func ValidateImageDataURI(raw string, maxBytes int64) error {
	if !strings.HasPrefix(raw, "data:") {
		return ErrNotDataURI
	}

	meta, payload, ok := strings.Cut(raw[len("data:"):], ",")
	if !ok {
		return ErrNotDataURI
	}

	// O tipo declarado vem antes do primeiro ';' (ex: data:image/png;base64,...)
	mediaType, _, _ := strings.Cut(meta, ";")
	if !strings.HasPrefix(mediaType, "image/") {
		return ErrNotImage
	}

	if !strings.Contains(meta, "base64") {
		// Data URI textual (raro): o tamanho é o próprio payload
		if int64(len(payload)) > maxBytes {
			return ErrImageTooBig
		}
		return nil
	}

	// Checa o tamanho antes de decodificar pra não gastar memória à toa
	if int64(base64.StdEncoding.DecodedLen(len(payload))) > maxBytes+2 {
		return ErrImageTooBig
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ErrBrokenBase64
	}
	if int64(len(decoded)) > maxBytes {
		return ErrImageTooBig
	}
	return nil
}
