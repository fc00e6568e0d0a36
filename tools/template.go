package tools

import (
	"fmt"
	"strings"
)

// SubstitutePlaceholders troca cada {name} do template pelo valor mapeado.
// Placeholders sem chave correspondente ficam intactos (não é erro) e chaves
// extras do mapa são ignoradas. A troca é substring literal: valores não são
// escapados, então um valor contendo {x} injeta texto literal no resultado
// (comportamento herdado, coberto por teste).
func SubstitutePlaceholders(template string, inputs map[string]interface{}) string {
	out := template
	for key, value := range inputs {
		out = strings.ReplaceAll(out, "{"+key+"}", stringify(value))
	}

	// Suporte legado: {user_input} também é satisfeito por main_input,
	// independente do mecanismo de campos por nome.
	if v, ok := inputs["user_input"]; ok {
		out = strings.ReplaceAll(out, "{user_input}", stringify(v))
	} else if v, ok := inputs["main_input"]; ok {
		out = strings.ReplaceAll(out, "{user_input}", stringify(v))
	}

	return out
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
