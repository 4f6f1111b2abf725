// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

/*
Package recommend implements the trending and personalized recommendation
engine.

An Engine is built once from a complete interaction log:

  - every event is mapped to an implicit rating (like, complete and save
    are strong signals; long plays are engaged; everything else is weak)
  - the log is deduplicated into a dense user-by-item Matrix
  - a hybrid user Similarity is computed from rating cosine and age proximity

The resulting snapshot is immutable and may be shared by any number of
request goroutines. Store publishes snapshots atomically so a background
reload can replace the engine without blocking readers.

Trending sums event ratings per item over a lookback window. Personal scores
the unwatched items of a user's nearest neighbors, boosting the user's
favorite genre, and falls back to trending for users with no history.

Failures are reported as *Error values whose Kind maps to an API error type
and HTTP status.
*/
package recommend
