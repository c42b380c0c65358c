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

package elements

import (
	"github.com/gosmc/libsmc-go/lib/errors"
	"github.com/gosmc/libsmc-go/lib/options"
)

// failWith attaches a backend error to the typed failure chosen by the call
// site. Both server reported failures and transport errors are converted.
func failWith(err error, wrap options.FailureWrapper) error {
	if err == nil {
		return nil
	}
	return wrap(errors.FailureFrom(err))
}

func fetchFailed(f *errors.ErrorOperationFailure) error {
	return errors.ErrorFetchElementFailed{Failure: f}
}

func updateFailed(f *errors.ErrorOperationFailure) error {
	return errors.ErrorUpdateElementFailed{Failure: f}
}

func deleteFailed(f *errors.ErrorOperationFailure) error {
	return errors.ErrorDeleteElementFailed{Failure: f}
}

func createFailed(f *errors.ErrorOperationFailure) error {
	return errors.ErrorCreateElementFailed{Failure: f}
}

func actionFailed(f *errors.ErrorOperationFailure) error {
	return errors.ErrorActionCommandFailed{Failure: f}
}
