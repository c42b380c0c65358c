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

package apiconfig

import (
	"reflect"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/go-playground/validator.v9"

	"github.com/gosmc/libsmc-go/lib/errors"
)

var validate *validator.Validate

var apiVersionRegex = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerFieldValidator("apiVersion", func(fl validator.FieldLevel) bool {
		return apiVersionRegex.MatchString(fl.Field().String())
	})
	registerFieldValidator("logLevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})
}

func registerFieldValidator(key string, fn validator.Func) {
	if err := validate.RegisterValidation(key, fn); err != nil {
		log.WithError(err).Panicf("failed to register validator %s", key)
	}
}

// Validate checks the config spec, returning an errors.ErrorValidation listing
// every invalid field.
func Validate(c *SMCAPIConfig) error {
	err := validate.Struct(&c.Spec)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	verr := errors.ErrorValidation{}
	for _, f := range fieldErrs {
		verr.ErroredFields = append(verr.ErroredFields, errors.ErroredField{
			Name:   f.Field(),
			Value:  f.Value(),
			Reason: "failed validation: " + f.Tag(),
		})
	}
	return verr
}
