package models

import (
	"strconv"
	"strings"
)

// Amount — денежное/числовое поле бэкенда. Бэкенд отдаёт суммы то числом,
// то строкой ("12.50"), в зависимости от ревизии схемы. Нормализуем один раз
// на границе: всё, что не парсится — 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)
	if s == "" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}

func (a Amount) Int() int {
	return int(a)
}
