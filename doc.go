// Package brfunds retrieves time series of Brazilian investment funds from
// remote comparison services and normalizes them into date-indexed tables.
//
// The pipeline is:
//   - Name normalization: free-text fund names and formatted CNPJs become the
//     tokens expected by the remote endpoints (see NormalizeName).
//   - Range resolution: optional dd/mm/yy bounds and period presets become a
//     concrete inclusive date range (see ResolveRange).
//   - Fetching: a Source is called through a Retrier that retries malformed
//     responses a bounded number of times.
//   - Series building: raw values are filtered to the range, stripped of
//     missing cells and scaled to ratios (see BuildSeries and Metric.Scale).
//   - Merging: every fund and benchmark series becomes a column of a Table,
//     outer-joined on the date.
//
// Client ties these steps together. The compareativos and comparador
// packages provide the two remote sources, and the brf command exposes them on
// the command line.
package brfunds
