package geocoder

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

import (
	"context"
	"strings"
)

// Candidate - одно совпадение, возвращенное геокодером.
// Координаты приходят строками в десятичных градусах.
type Candidate struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name,omitempty"`
}

// Provider выполняет текстовый поиск места и возвращает кандидатов в порядке релевантности
type Provider interface {
	Search(ctx context.Context, text string) ([]Candidate, error)
}

// ProviderFunc позволяет использовать функцию как Provider
type ProviderFunc func(ctx context.Context, text string) ([]Candidate, error)

// Search implements Provider.
func (f ProviderFunc) Search(ctx context.Context, text string) ([]Candidate, error) {
	return f(ctx, text)
}

// ScopeQuery добавляет к названию места страну, чтобы локальные названия
// не совпадали с одноименными местами в других странах.
// Пустая страна отключает суффикс.
func ScopeQuery(text, country string) string {
	text = strings.TrimSpace(text)
	country = strings.TrimSpace(country)
	if country == "" {
		return text
	}
	return text + ", " + country
}

// NormalizeQuery приводит текст запроса к ключу кеша
func NormalizeQuery(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
