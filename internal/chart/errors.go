package chart

import "errors"

var ErrInvalidPeriod = errors.New("invalid chart period")
