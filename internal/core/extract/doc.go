// Package extract turns the raw payloads of live nodes into display-safe
// values.
//
// FilterAndFormatData copies props, state and context payloads with cycle
// and depth guards. GetHooksStateAndUpdateMethod walks a chained state list
// and pairs each state hook with its queue, which the builder saves in the
// record store. GetStateAndContextData reads the context a store Provider
// hands down, ExtractProps applies the per-shape props strategy and
// ContextValue reads an anonymous context provider's value.
//
// All operations are bounded by an Extractor's Options and are safe for
// concurrent use.
package extract
