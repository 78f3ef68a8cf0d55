// Package model contains data structures for launch configuration, case policy, node DTOs and app errors
package model

import "fmt"

// CasePolicy - режим сравнения строк при поиске
type CasePolicy int

const (
	Sensitive CasePolicy = iota
	Insensitive
)

func (p CasePolicy) String() string {
	switch p {
	case Insensitive:
		return "insensitive"
	default:
		return "sensitive"
	}
}

// Имена переменных окружения, важно только их наличие
const (
	EnvCaseSensitive = "CASE_SENSITIVE"
	EnvIgnoreCase    = "IGNORE_CASE"
)

// Флаги командной строки
const (
	FlagCaseSensitive = "--case-sensitive"
	FlagIgnoreCase    = "--ignore-case"
)

// EnvSignals - считанные один раз на старте сигналы окружения
type EnvSignals struct {
	CaseSensitive bool
	IgnoreCase    bool
}

// Config - итоговые параметры запуска CLI
type Config struct {
	Query    string
	FilePath string
	Policy   CasePolicy
}

// NodeInit - параметры запуска поискового узла
type NodeInit struct {
	Address string
}

// SearchTask - задание для узла: строка поиска и содержимое
type SearchTask struct {
	TaskID     string `json:"tid,omitempty"`
	Query      string `json:"query"`
	Contents   string `json:"contents"`
	IgnoreCase bool   `json:"ignore_case"`
}

// Policy returns the comparison mode requested by the task.
func (t *SearchTask) Policy() CasePolicy {
	if t.IgnoreCase {
		return Insensitive
	}
	return Sensitive
}

type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}

// ErrorKind distinguishes configuration failures from I/O failures.
type ErrorKind int

const (
	KindConfig ErrorKind = iota + 1
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// AppError carries a human-readable message and, optionally, the cause.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil || e.Err.Error() == e.Message {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewConfigError wraps a sentinel configuration error.
func NewConfigError(err error) *AppError {
	return &AppError{Kind: KindConfig, Message: err.Error(), Err: err}
}

// NewIOError builds an I/O error with the provided message and cause.
func NewIOError(msg string, err error) *AppError {
	return &AppError{Kind: KindIO, Message: msg, Err: err}
}
