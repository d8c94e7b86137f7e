// Package zapbackend routes emissions into a zap logger, so processes
// already standardized on zap can give category loggers the same
// destination without a second output pipeline. The category travels
// as a zap field; write payloads go out as binary fields and dumps as
// their hex text.
package zapbackend
