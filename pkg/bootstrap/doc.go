// Package bootstrap provides initialization helpers for programs that consume
// MT4 return codes.
//
// It wires the ambient stack in one place:
//   - Logger setup with file rotation and the ret_code enrichment hook
//   - Redis connection and the return-code catalog
//   - Kafka manager and result reporter
//   - OpenTelemetry tracing
//
// Example usage:
//
//	func main() {
//	    cfg := &AppConfig{}
//	    if err := config.LoadConfig(cfg); err != nil {
//	        log.Fatal(err)
//	    }
//	    resolver := cfg.Retcode.Resolver()
//
//	    if err := bootstrap.InitLoggerWithOptions(cfg.Log, bootstrap.LoggerOptions{
//	        ServiceName: "mt4-gateway",
//	        Resolver:    resolver,
//	    }); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    shutdown, err := bootstrap.InitTracing(ctx, cfg.Tracing)
//	    if err != nil {
//	        log.Warn(err)
//	    }
//	    defer shutdown(ctx)
//	}
package bootstrap
