// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process is serving.
// [ReadinessHandler] runs a set of named [Checks] concurrently and answers
// 503 when any of them fails or exceeds the timeout.
//
//	r.Get("/healthz", health.LivenessHandler())
//	r.Get("/readyz", health.ReadinessHandler(health.Checks{
//	    "email": notifier.Healthcheck,
//	}, health.WithLogger(log)))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// sends Accept: application/json or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "email": {"status": "unhealthy", "error": "email service not configured"}
//	  }
//	}
package health
