//go:build !ios && !android && (amd64 || arm64)

package abi

import (
	"unsafe"

	"github.com/obinnaokechukwu/jitpy/cpython"
)

// --- List operations -------------------------------------------------------

// listNew implements jit_list_new: returns a new list of the given size.
// Slots must be filled with jit_list_set before being read.
func listNew(size int64) uintptr {
	return ref(cpython.ListNew(size))
}

// listSize implements jit_list_size: returns len(list), or -1 on failure.
func listSize(list uintptr) int64 {
	return cpython.ListSize(obj(list))
}

// listGet implements jit_list_get: returns a new reference to list[index],
// or NULL with the error state set.
func listGet(list uintptr, index int64) uintptr {
	item := cpython.ListGetItem(obj(list), index)
	if item == nil {
		return 0
	}
	// CPython hands the slot back borrowed; the surface returns new refs.
	return newRef(item)
}

// listSet implements jit_list_set: stores item at list[index] without
// consuming the caller's reference. Returns 0 on success, -1 on failure.
func listSet(list uintptr, index int64, item uintptr) int32 {
	it := obj(item)
	// PyList_SetItem steals; take a count so the caller's reference is
	// untouched.
	cpython.IncRef(it)
	rc := cpython.ListSetItem(obj(list), index, it)
	if rc != 0 {
		cpython.DecRef(it)
	}
	return rc
}

// listAppend implements jit_list_append: appends a borrowed item.
func listAppend(list, item uintptr) int32 {
	return cpython.ListAppend(obj(list), obj(item))
}

// --- Dict operations -------------------------------------------------------

// dictNew implements jit_dict_new: returns a new empty dict.
func dictNew() uintptr {
	return ref(cpython.DictNew())
}

// dictGet implements jit_dict_get: returns a new reference to dict[key], or
// NULL without raising if the key is absent.
func dictGet(dict, key uintptr) uintptr {
	item := cpython.DictGetItemString(obj(dict), cstr(key))
	if item == nil {
		return 0
	}
	return newRef(item)
}

// dictGetObj implements jit_dict_get_obj: like jit_dict_get with a borrowed
// object key.
func dictGetObj(dict, key uintptr) uintptr {
	item := cpython.DictGetItem(obj(dict), obj(key))
	if item == nil {
		return 0
	}
	return newRef(item)
}

// dictSet implements jit_dict_set: dict[key] = val, borrowing val.
func dictSet(dict, key, val uintptr) int32 {
	return cpython.DictSetItemString(obj(dict), cstr(key), obj(val))
}

// dictSetObj implements jit_dict_set_obj: dict[key] = val with borrowed
// object key and value.
func dictSetObj(dict, key, val uintptr) int32 {
	return cpython.DictSetItem(obj(dict), obj(key), obj(val))
}

// dictDel implements jit_dict_del: removes dict[key]. Returns -1 with the
// error state set if the key is absent.
func dictDel(dict, key uintptr) int32 {
	return cpython.DictDelItemString(obj(dict), cstr(key))
}

// dictKeys implements jit_dict_keys: returns a new list of the dict's keys.
func dictKeys(dict uintptr) uintptr {
	return ref(cpython.DictKeys(obj(dict)))
}

// --- Tuple operations ------------------------------------------------------

// tupleNew implements jit_tuple_new: returns a new tuple of the given size.
// Slots must be filled with jit_tuple_set before the tuple is exposed to
// any other operation.
func tupleNew(size int64) uintptr {
	return ref(cpython.TupleNew(size))
}

// tupleGet implements jit_tuple_get: returns a new reference to
// tuple[index], or NULL with the error state set.
func tupleGet(tuple uintptr, index int64) uintptr {
	item := cpython.TupleGetItem(obj(tuple), index)
	if item == nil {
		return 0
	}
	return newRef(item)
}

// tupleSet implements jit_tuple_set: stores item at tuple[index] without
// consuming the caller's reference.
func tupleSet(tuple uintptr, index int64, item uintptr) int32 {
	it := obj(item)
	cpython.IncRef(it)
	rc := cpython.TupleSetItem(obj(tuple), index, it)
	if rc != 0 {
		cpython.DecRef(it)
	}
	return rc
}

// --- Attribute access ------------------------------------------------------

// getAttr implements jit_getattr: returns a new reference to the named
// attribute, or NULL with the error state set.
func getAttr(o, name uintptr) uintptr {
	return ref(cpython.GetAttrString(obj(o), cstr(name)))
}

// setAttr implements jit_setattr: sets the named attribute, borrowing val.
func setAttr(o, name, val uintptr) int32 {
	return cpython.SetAttrString(obj(o), cstr(name), obj(val))
}

// hasAttr implements jit_hasattr: returns 1 if the attribute exists, else 0.
// Never raises.
func hasAttr(o, name uintptr) int32 {
	return cpython.HasAttrString(obj(o), cstr(name))
}

// --- Reference counting ----------------------------------------------------

// incRef implements jit_incref. Safe with NULL.
func incRef(o uintptr) {
	cpython.IncRef(obj(o))
}

// decRef implements jit_decref. Safe with NULL. The caller must own the
// reference being dropped.
func decRef(o uintptr) {
	cpython.DecRef(obj(o))
}

// --- Module import ---------------------------------------------------------

// importModule implements jit_import: imports a module by name and returns
// a new reference, or NULL with the error state set.
func importModule(name uintptr) uintptr {
	return ref(cpython.ImportModule(cstr(name)))
}

// --- Sequence/mapping access -----------------------------------------------

// length implements jit_len: returns len(obj), or -1 with the error state
// set.
func length(o uintptr) int64 {
	return cpython.ObjectSize(obj(o))
}

// getItem implements jit_getitem: returns a new reference to obj[index].
func getItem(o uintptr, index int64) uintptr {
	return ref(cpython.SequenceGetItem(obj(o), index))
}

// setItem implements jit_setitem: obj[index] = val, borrowing val.
func setItem(o uintptr, index int64, val uintptr) int32 {
	return cpython.SequenceSetItem(obj(o), index, obj(val))
}

// getItemObj implements jit_getitem_obj: returns a new reference to
// obj[key] with a borrowed object key.
func getItemObj(o, key uintptr) uintptr {
	return ref(cpython.GetItem(obj(o), obj(key)))
}

// setItemObj implements jit_setitem_obj: obj[key] = val with borrowed
// object key and value.
func setItemObj(o, key, val uintptr) int32 {
	return cpython.SetItem(obj(o), obj(key), obj(val))
}

// --- Iterator support ------------------------------------------------------

// getIter implements jit_get_iter: returns a new reference to iter(obj), or
// NULL with the error state set if the object is not iterable.
func getIter(o uintptr) uintptr {
	return ref(cpython.GetIter(obj(o)))
}

// iterNext implements jit_iter_next: returns a new reference to the next
// item, or NULL at exhaustion (no error state) or on failure (error state
// set; distinguish with jit_error_occurred).
func iterNext(iter uintptr) uintptr {
	return ref(cpython.IterNext(obj(iter)))
}

// iterCheck implements jit_iter_check: returns 1 if the object is an
// iterator.
func iterCheck(o uintptr) int32 {
	return cpython.IterCheck(obj(o))
}

// --- Bytes support ---------------------------------------------------------

// bytesNew implements jit_bytes_new: returns a new bytes object copied from
// len bytes at data. The data may contain NUL bytes.
func bytesNew(data uintptr, size int64) uintptr {
	return ref(cpython.BytesFromStringAndSize(unsafe.Pointer(data), size))
}

// bytesData implements jit_bytes_data: returns a borrowed pointer to the
// bytes object's internal storage, valid while the object is alive.
func bytesData(o uintptr) uintptr {
	return uintptr(unsafe.Pointer(cpython.BytesAsString(obj(o))))
}

// bytesLen implements jit_bytes_len: returns len(obj) for a bytes object,
// or -1 on failure.
func bytesLen(o uintptr) int64 {
	return cpython.BytesSize(obj(o))
}
