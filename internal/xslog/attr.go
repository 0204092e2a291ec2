package xslog

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Elzoidbergo/HostPilot/internal/version"
	"github.com/Elzoidbergo/HostPilot/internal/xhttp"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func RequestMethod(r *http.Request) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, r.Method)
}

func RequestPath(r *http.Request) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, r.URL.Path)
}

func IP(ip string) slog.Attr {
	const ipKey = "ip"
	return slog.String(ipKey, ip)
}

func RequestIP(r *http.Request) slog.Attr {
	return IP(xhttp.GetRequestIP(r))
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func BookingID(id int64) slog.Attr {
	const bookingIDKey = "booking_id"
	return slog.Int64(bookingIDKey, id)
}

func PropertyID(id int64) slog.Attr {
	const propertyIDKey = "property_id"
	return slog.Int64(propertyIDKey, id)
}

func ListingID(id string) slog.Attr {
	const listingIDKey = "listing_id"
	return slog.String(listingIDKey, id)
}

func ThreadID(id int64) slog.Attr {
	const threadIDKey = "thread_id"
	return slog.Int64(threadIDKey, id)
}

func SubscriptionID(id string) slog.Attr {
	const subscriptionIDKey = "subscription_id"
	return slog.String(subscriptionIDKey, id)
}

func EventIndex(i int) slog.Attr {
	const eventIndexKey = "event_index"
	return slog.Int(eventIndexKey, i)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func HoursUntilArrival(hours float64) slog.Attr {
	const hoursUntilArrivalKey = "hours_until_arrival"
	return slog.Float64(hoursUntilArrivalKey, hours)
}

func LeadTime(d time.Duration) slog.Attr {
	const leadTimeKey = "lead_time"
	return slog.Duration(leadTimeKey, d)
}

func Start(t time.Time) slog.Attr {
	const startKey = "start"
	return slog.Time(startKey, t)
}

func End(t time.Time) slog.Attr {
	const endKey = "end"
	return slog.Time(endKey, t)
}
