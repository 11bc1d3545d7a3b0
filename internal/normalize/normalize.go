// Package normalize converte texto bruto (markup, CSV) em valores tipados.
// Todas as funções são totais: entrada inválida vira nil, nunca erro.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reNumericRun = regexp.MustCompile(`[\d,.]+`)
	reDecimal    = regexp.MustCompile(`[\d.]+`)
	reIntRun     = regexp.MustCompile(`[\d,]+`)
	reKSuffix    = regexp.MustCompile(`([\d.,]+)\s*[Kk]`)
)

// ParseMoney extrai um valor monetário de texto livre ("$1,299.00").
// Tenta conversão direta após remover símbolo e separadores; se falhar,
// cai para a primeira sequência numérica encontrada no texto original.
func ParseMoney(text string) *float64 {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}
	t = strings.ReplaceAll(t, "$", "")
	t = strings.ReplaceAll(t, ",", "")
	if v, err := strconv.ParseFloat(t, 64); err == nil {
		return &v
	}
	m := reNumericRun.FindString(text)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseRating extrai o primeiro número decimal de texto livre
// ("4.3 out of 5 stars" -> 4.3).
func ParseRating(text string) *float64 {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	m := reDecimal.FindString(text)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseReviewCount interpreta contagens de avaliações: "(1,234)" -> 1234,
// "1.2K" -> 1200. Sufixo K/k multiplica por 1000 com truncamento.
func ParseReviewCount(text string) *int {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil
	}
	t = strings.Trim(t, "()")
	if strings.ContainsAny(t, "Kk") {
		if m := reKSuffix.FindStringSubmatch(t); m != nil {
			f, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
			if err == nil {
				n := int(f * 1000)
				return &n
			}
		}
	}
	m := reIntRun.FindString(t)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return nil
	}
	return &n
}

// ToFloat coage valores já tipados ou "stringly-typed" vindos de fonte
// persistida. String vazia ou não numérica -> nil.
func ToFloat(v any) *float64 {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		return &x
	case float32:
		f := float64(x)
		return &f
	case int:
		f := float64(x)
		return &f
	case int64:
		f := float64(x)
		return &f
	case *float64:
		return x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// ToInt coage via ToFloat e trunca ("12.0" -> 12).
func ToInt(v any) *int {
	f := ToFloat(v)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
