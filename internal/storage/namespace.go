package storage

import "context"

type namespaced struct {
	inner  Storage
	prefix string
}

// Namespace scopes every key of s under "<ns>:". Closing the returned
// storage is a no-op; the owner of s closes it.
func Namespace(s Storage, ns string) Storage {
	return &namespaced{inner: s, prefix: ns + ":"}
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

func (n *namespaced) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return n.inner.Update(ctx, n.prefix+key, fn)
}

func (n *namespaced) UpdateMany(ctx context.Context, keys []string, fn UpdateManyFunc) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = n.prefix + k
	}
	return n.inner.UpdateMany(ctx, full, fn)
}

func (n *namespaced) Close() error { return nil }
