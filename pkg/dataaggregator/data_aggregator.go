package dataaggregator

import (
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
)

type Aggregator struct {
	Sources []DataSource
}

var globalAggregator Aggregator

// GlobalSetup replaces the global source list. Callers assemble the
// chain themselves - typically cached results wrapping the remote rail
// status API.
func GlobalSetup(sources ...DataSource) {
	globalAggregator = Aggregator{}

	for _, dataSource := range sources {
		globalAggregator.RegisterSource(dataSource)
	}
}

func (a *Aggregator) RegisterSource(dataSource DataSource) {
	a.Sources = append(a.Sources, dataSource)

	log.Debug().Str("name", dataSource.GetName()).Msg("Registering new Data Source")
}

// Lookup finds the first source supporting the requested return type
// and hands it the query.
func Lookup[T any](query any) (T, error) {
	var empty T

	for _, dataSource := range globalAggregator.Sources {
		matches := false

		lookupType := reflect.TypeOf(*new(T))
		if lookupType.Kind() == reflect.Pointer {
			lookupType = lookupType.Elem()
		}

		for _, supportedType := range dataSource.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if matches {
			returnValue, returnError := dataSource.Lookup(query)

			if returnValue == nil {
				return empty, returnError
			}

			return returnValue.(T), returnError
		}
	}

	return empty, errors.New("failed to find a matching data source for type")
}
