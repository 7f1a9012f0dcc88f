package rendercache

// Namespace partitions the cache key space per render variant. It is an
// enumerated type rather than free-form strings so variant keys cannot
// collide on a typo. The two variants may legitimately produce different
// bytes for the same document and must never share an entry.
type Namespace string

const (
	// NamespaceContent holds emit-mode renderings.
	NamespaceContent Namespace = "content"
	// NamespaceContentReturn holds return-mode renderings.
	NamespaceContentReturn Namespace = "content-return"
)

// namespaces enumerates every variant a document-scoped invalidation covers.
var namespaces = [...]Namespace{NamespaceContent, NamespaceContentReturn}
