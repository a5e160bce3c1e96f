package pkg

import (
	"errors"
	"fmt"
	"sync"
)

// IDMap assigns dense integer ids to strings in first-seen order.
type IDMap struct {
	StrToID map[string]int
	sync.Mutex
}

func NewIDMap() *IDMap {
	return &IDMap{
		StrToID: make(map[string]int),
	}
}

func (idMap *IDMap) GetID(str string) int {
	idMap.Lock()
	defer idMap.Unlock()
	if id, ok := idMap.StrToID[str]; ok {
		return id
	}

	id := len(idMap.StrToID)
	idMap.StrToID[str] = id

	return id
}

// Lookup returns the id of str without assigning a new one.
func (idMap *IDMap) Lookup(str string) (int, bool) {
	idMap.Lock()
	defer idMap.Unlock()
	id, ok := idMap.StrToID[str]
	return id, ok
}

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

// Unwrap exposes both the code and the original error to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	errs := []error{e.code}
	if e.orig != nil {
		errs = append(errs, e.orig)
	}
	return errs
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	ErrMalformedCoordinate = errors.New("malformed coordinate")
	ErrRemoteFetch         = errors.New("remote fetch failed")
	ErrJoinIntegrity       = errors.New("join integrity violated")
	ErrEmptyGroup          = errors.New("empty pair group")
	ErrNoMatch             = errors.New("no matching place")
	ErrUsage               = errors.New("invalid usage")
	ErrBadParamInput       = errors.New("given Param is not valid")
	ErrInvalidStationFile  = errors.New("invalid station file")
)
