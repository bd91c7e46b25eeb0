// Package creatorpayouts keeps the per-creator balance book and the payment
// records produced by subscription purchases. It provides the payment
// capability the content ledger invokes as the final step of a purchase.
package creatorpayouts
