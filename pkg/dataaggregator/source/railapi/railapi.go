package railapi

import (
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/railtrace/railtrace/pkg/dataaggregator/query"
	"github.com/railtrace/railtrace/pkg/dataaggregator/source"
	"github.com/railtrace/railtrace/pkg/raildata"
	"github.com/railtrace/railtrace/pkg/util"
)

const defaultPNRStatusEndpoint = "https://irctc-indian-railway-pnr-status.p.rapidapi.com"
const defaultScheduleEndpoint = "https://train-tracker-api.onrender.com"

const maxRetries = 3

// Source looks up PNR statuses and train schedules from the two remote
// providers. Transient failures are retried with exponential backoff
// here - never further in.
type Source struct {
	PNRStatusEndpoint string
	PNRStatusAPIKey   string
	ScheduleEndpoint  string

	HTTPClient *http.Client
}

func NewSource() Source {
	env := util.GetEnvironmentVariables()

	pnrEndpoint := defaultPNRStatusEndpoint
	if env["RAILTRACE_PNR_API_ENDPOINT"] != "" {
		pnrEndpoint = env["RAILTRACE_PNR_API_ENDPOINT"]
	}

	scheduleEndpoint := defaultScheduleEndpoint
	if env["RAILTRACE_SCHEDULE_API_ENDPOINT"] != "" {
		scheduleEndpoint = env["RAILTRACE_SCHEDULE_API_ENDPOINT"]
	}

	return Source{
		PNRStatusEndpoint: pnrEndpoint,
		PNRStatusAPIKey:   env["RAILTRACE_PNR_API_KEY"],
		ScheduleEndpoint:  scheduleEndpoint,

		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s Source) GetName() string {
	return "Rail Status API"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(raildata.PNRStatus{}),
		reflect.TypeOf(raildata.TrainDetails{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.PNRStatus:
		return s.PNRStatusQuery(q)
	case query.TrainSchedule:
		return s.TrainScheduleQuery(q)
	default:
		return nil, source.UnsupportedSourceError
	}
}

// doWithRetry performs the request, retrying transient transport and
// server errors. Client errors (4xx) are final.
func (s Source) doWithRetry(req *http.Request) (*http.Response, error) {
	var resp *http.Response

	operation := func() error {
		var err error
		resp, err = s.HTTPClient.Do(req)
		if err != nil {
			return err
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return fmt.Errorf("provider returned status %d", resp.StatusCode)
		}

		return nil
	}

	err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries))
	if err != nil {
		return nil, err
	}

	return resp, nil
}
