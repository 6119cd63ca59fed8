// Package jobs provides scheduled background tasks for the sales service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in the
// schedule.
//
// # Available Jobs
//
// ExpirePendingOrdersJob cancels orders that stayed PENDING longer than the
// configured TTL (PENDING_ORDER_TTL, default 24h). It runs on
// EXPIRE_PENDING_ORDERS_SCHEDULE, every five minutes by default.
//
// # Usage
//
//	manager := jobs.NewJobManager(logger,
//		jobs.NewExpirePendingOrdersJob(handler, "0 */5 * * * *", 24*time.Hour, logger),
//	)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A sweep that expires nothing is not logged. Failures are logged at error level
// and the next tick tries again; orders are expired one by one, so a failure on
// one order does not undo the others.
package jobs
