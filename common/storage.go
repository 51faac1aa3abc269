package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key interface{}, value interface{}) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// FromKnownContract returns true if the calling script hash equals to the
// contract address stored under the passed storage key. It is used to
// restrict methods to a fixed collaborator contract.
func FromKnownContract(ctx storage.Context, caller []byte, key interface{}) bool {
	addr := storage.Get(ctx, key).([]byte)
	return BytesEqual(caller, addr)
}

// CallerIsKnownContract is a panicking variant of FromKnownContract.
func CallerIsKnownContract(ctx storage.Context, key interface{}, panicMsg string) {
	caller := runtime.GetCallingScriptHash()
	if !FromKnownContract(ctx, caller, key) {
		panic(panicMsg)
	}
}

// BytesEqual compares two slices of bytes by wrapping them into strings,
// which is necessary with util.Equals interop behaviour, see neo-go#1176.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}
