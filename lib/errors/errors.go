// Copyright (c) 2026 Tigera, Inc. All rights reserved.

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorOperationFailure is the uniform description of a failure reported by
// the management server. It is parsed once from the HTTP response and then
// attached to the error kind appropriate to the attempted operation.
type ErrorOperationFailure struct {
	// HTTP status code. Zero when the failure never reached the server.
	Code int

	// Status, Message and Details are taken from a JSON error body when the
	// server supplies one. Message holds the raw body text otherwise.
	Status  string
	Message string
	Details string
}

func (e *ErrorOperationFailure) Error() string {
	switch {
	case e.Message != "" && e.Details != "":
		return fmt.Sprintf("%s %s", e.Message, e.Details)
	case e.Details != "":
		return e.Details
	case e.Message != "":
		return e.Message
	}
	return fmt.Sprintf("HTTP error code: %d, no message", e.Code)
}

// ErrorConnection is returned when the request could not be completed at the
// transport level: connection refused, timeout, TLS failure and so on.
type ErrorConnection struct {
	Err  error
	Href string
}

func (e ErrorConnection) Error() string {
	if e.Href == "" {
		return fmt.Sprintf("connection error: %v", e.Err)
	}
	return fmt.Sprintf("connection error (%s): %v", e.Href, e.Err)
}

func (e ErrorConnection) Unwrap() error {
	return e.Err
}

// FailureFrom returns the failure descriptor carried by err. Transport errors
// and any other error type are converted into a descriptor with a zero code so
// that every failure can be attached to a typed error kind.
func FailureFrom(err error) *ErrorOperationFailure {
	if err == nil {
		return nil
	}
	var f *ErrorOperationFailure
	if goerrors.As(err, &f) {
		return f
	}
	return &ErrorOperationFailure{Message: err.Error()}
}

// IsConflict returns true if the failure is the server rejecting a stale
// version token.
func IsConflict(err error) bool {
	f := FailureFrom(err)
	if f == nil {
		return false
	}
	return f.Code == http.StatusPreconditionFailed || f.Code == http.StatusConflict
}

// Error indicating a named element could not be located, or that the element
// type is not directly addressable.
type ErrorElementNotFound struct {
	Name   string
	Kind   string
	Reason string
}

func (e ErrorElementNotFound) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("element not found: %s", e.Reason)
	}
	return fmt.Sprintf("cannot find specified element: %s, type: %s", e.Name, e.Kind)
}

// Error indicating the server rejected a create request.
type ErrorCreateElementFailed struct {
	Failure *ErrorOperationFailure
}

func (e ErrorCreateElementFailed) Error() string {
	return "create element failed: " + e.Failure.Error()
}

func (e ErrorCreateElementFailed) Unwrap() error {
	return e.Failure
}

// Error indicating the server rejected a modification. This includes version
// token conflicts.
type ErrorUpdateElementFailed struct {
	Failure *ErrorOperationFailure
}

func (e ErrorUpdateElementFailed) Error() string {
	return "update element failed: " + e.Failure.Error()
}

func (e ErrorUpdateElementFailed) Unwrap() error {
	return e.Failure
}

// ErrorModificationFailed is an alternative update failure used by call sites
// that change relationships rather than plain attributes.
type ErrorModificationFailed struct {
	Failure *ErrorOperationFailure
}

func (e ErrorModificationFailed) Error() string {
	return "modification failed: " + e.Failure.Error()
}

func (e ErrorModificationFailed) Unwrap() error {
	return e.Failure
}

// Error indicating the element is system protected and may not be modified.
// This check is made client side.
type ErrorModificationForbidden struct {
	Name string
}

func (e ErrorModificationForbidden) Error() string {
	return fmt.Sprintf("cannot modify system element: %s", e.Name)
}

// Error indicating the server rejected, or could not serve, a read.
type ErrorFetchElementFailed struct {
	Failure *ErrorOperationFailure
}

func (e ErrorFetchElementFailed) Error() string {
	return "fetch element failed: " + e.Failure.Error()
}

func (e ErrorFetchElementFailed) Unwrap() error {
	return e.Failure
}

// Error indicating the server rejected a delete, typically because other
// elements still reference this one.
type ErrorDeleteElementFailed struct {
	Failure *ErrorOperationFailure
}

func (e ErrorDeleteElementFailed) Error() string {
	return "delete element failed: " + e.Failure.Error()
}

func (e ErrorDeleteElementFailed) Unwrap() error {
	return e.Failure
}

// Error indicating a POST against an action link failed.
type ErrorActionCommandFailed struct {
	Failure *ErrorOperationFailure
}

func (e ErrorActionCommandFailed) Error() string {
	return "action command failed: " + e.Failure.Error()
}

func (e ErrorActionCommandFailed) Unwrap() error {
	return e.Failure
}

// Error indicating the requested relation is not present in the element's
// link table.
type ErrorResourceLinkMissing struct {
	Rel string
}

func (e ErrorResourceLinkMissing) Error() string {
	return fmt.Sprintf("resource requested: %q is not available on this element", e.Rel)
}

// Validation error containing the fields that failed validation.
type ErrorValidation struct {
	ErroredFields []ErroredField
}

type ErroredField struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e ErrorValidation) Error() string {
	if len(e.ErroredFields) == 0 {
		return "unknown validation error"
	} else if len(e.ErroredFields) == 1 {
		f := e.ErroredFields[0]
		return fmt.Sprintf("error with field %s = '%v' (%s)", f.Name, f.Value, f.Reason)
	}
	s := "error with the following fields:\n"
	for _, f := range e.ErroredFields {
		s = s + fmt.Sprintf("-  %s = '%v' (%s)\n", f.Name, f.Value, f.Reason)
	}
	return strings.TrimSuffix(s, "\n")
}
