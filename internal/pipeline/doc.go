// Package pipeline runs a phone number lookup from raw input to report.
//
// The stages run in a fixed order, each as a Step that reads and extends a
// shared State:
//
//	parse -> resolve -> numverify -> identity -> links
//
// and the result is assembled into a model.Report. Only the parse stage can
// fail the run; the lookup stages record failures in the report instead.
// Steps run sequentially and each stage is logged with the step name.
package pipeline
