//go:build !ios && !android && (amd64 || arm64)

// Package cpython provides low-level bindings to the CPython C API.
// It covers exactly the entry points the jitpy safety layer consumes:
// interpreter lifecycle, GIL control, reference counting, containers,
// attributes, iterators, the buffer protocol, and error state.
//
// Every function returning a PyObject documents whether the reference is new
// (caller owns one count) or borrowed (caller must not release it). This
// mirrors CPython's own convention and is load-bearing: the jitpy ABI surface
// is built on top of these exact disciplines.
package cpython

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/jitpy/internal/bindings"
)

// Function bindings - registered when init() is called
var (
	pyIsInitialized func() int32
	pyInitializeEx  func(initsigs int32)
	pyFinalizeEx    func() int32

	pyGILStateEnsure    func() GILState
	pyGILStateRelease   func(state GILState)
	pyEvalSaveThread    func() ThreadState
	pyEvalRestoreThread func(save ThreadState)

	pyIncRef func(obj PyObject)
	pyDecRef func(obj PyObject)

	pyLongFromLongLong func(v int64) PyObject
	pyLongAsLongLong   func(obj PyObject) int64
	pyFloatFromDouble  func(v float64) PyObject
	pyFloatAsDouble    func(obj PyObject) float64
	pyBoolFromLong     func(v int64) PyObject
	pyObjectIsTrue     func(obj PyObject) int32

	pyUnicodeFromString func(s string) PyObject
	pyUnicodeAsUTF8     func(obj PyObject) *byte
	pyUnicodeAsUTF8Str  func(obj PyObject) string

	pyObjectGetAttrString func(obj PyObject, name string) PyObject
	pyObjectSetAttrString func(obj PyObject, name string, val PyObject) int32
	pyObjectHasAttrString func(obj PyObject, name string) int32
	pyObjectCallObject    func(callable, args PyObject) PyObject
	pyObjectStr           func(obj PyObject) PyObject
	pyObjectIsInstance    func(obj, cls PyObject) int32
	pyCallableCheck       func(obj PyObject) int32
	pyObjectSize          func(obj PyObject) int64
	pyObjectGetItem       func(obj, key PyObject) PyObject
	pyObjectSetItem       func(obj, key, val PyObject) int32

	pySequenceGetItem func(obj PyObject, index int64) PyObject
	pySequenceSetItem func(obj PyObject, index int64, val PyObject) int32

	pyListNew     func(size int64) PyObject
	pyListSize    func(list PyObject) int64
	pyListGetItem func(list PyObject, index int64) PyObject
	pyListSetItem func(list PyObject, index int64, item PyObject) int32
	pyListAppend  func(list, item PyObject) int32

	pyDictNew           func() PyObject
	pyDictGetItem       func(dict, key PyObject) PyObject
	pyDictSetItem       func(dict, key, val PyObject) int32
	pyDictGetItemString func(dict PyObject, key string) PyObject
	pyDictSetItemString func(dict PyObject, key string, val PyObject) int32
	pyDictDelItemString func(dict PyObject, key string) int32
	pyDictKeys          func(dict PyObject) PyObject

	pyTupleNew     func(size int64) PyObject
	pyTupleGetItem func(tuple PyObject, index int64) PyObject
	pyTupleSetItem func(tuple PyObject, index int64, item PyObject) int32

	pyImportImportModule func(name string) PyObject
	pyImportAddModule    func(name string) PyObject
	pyModuleGetDict      func(module PyObject) PyObject

	pyObjectGetIter func(obj PyObject) PyObject
	pyIterNext      func(iter PyObject) PyObject
	pyIterCheck     func(obj PyObject) int32

	pyBytesFromStringAndSize func(data unsafe.Pointer, size int64) PyObject
	pyBytesAsString          func(obj PyObject) *byte
	pyBytesSize              func(obj PyObject) int64

	pyRunString func(src string, start int32, globals, locals PyObject) PyObject

	pyObjectGetBuffer func(obj PyObject, view unsafe.Pointer, flags int32) int32
	pyBufferRelease   func(view unsafe.Pointer)

	bindingsRegistered bool
)

// Singletons and type objects resolved from libpython data symbols.
// These are static interpreter storage, never freed.
var (
	noneSingleton  PyObject
	trueSingleton  PyObject
	falseSingleton PyObject

	listType    PyObject
	dictType    PyObject
	tupleType   PyObject
	longType    PyObject
	floatType   PyObject
	unicodeType PyObject
	boolType    PyObject
	bytesType   PyObject
)

func init() {
	registerBindings()
}

func registerBindings() {
	if bindingsRegistered {
		return
	}

	// Ensure libpython is loaded
	if err := bindings.Load(); err != nil {
		return // Will fail later when functions are called
	}

	lib := bindings.LibPython()
	if lib == 0 {
		return
	}

	purego.RegisterLibFunc(&pyIsInitialized, lib, "Py_IsInitialized")
	purego.RegisterLibFunc(&pyInitializeEx, lib, "Py_InitializeEx")
	purego.RegisterLibFunc(&pyFinalizeEx, lib, "Py_FinalizeEx")

	purego.RegisterLibFunc(&pyGILStateEnsure, lib, "PyGILState_Ensure")
	purego.RegisterLibFunc(&pyGILStateRelease, lib, "PyGILState_Release")
	purego.RegisterLibFunc(&pyEvalSaveThread, lib, "PyEval_SaveThread")
	purego.RegisterLibFunc(&pyEvalRestoreThread, lib, "PyEval_RestoreThread")

	// Py_INCREF/Py_DECREF are macros; the function forms are exported for
	// exactly this kind of out-of-process binding.
	purego.RegisterLibFunc(&pyIncRef, lib, "Py_IncRef")
	purego.RegisterLibFunc(&pyDecRef, lib, "Py_DecRef")

	purego.RegisterLibFunc(&pyLongFromLongLong, lib, "PyLong_FromLongLong")
	purego.RegisterLibFunc(&pyLongAsLongLong, lib, "PyLong_AsLongLong")
	purego.RegisterLibFunc(&pyFloatFromDouble, lib, "PyFloat_FromDouble")
	purego.RegisterLibFunc(&pyFloatAsDouble, lib, "PyFloat_AsDouble")
	purego.RegisterLibFunc(&pyBoolFromLong, lib, "PyBool_FromLong")
	purego.RegisterLibFunc(&pyObjectIsTrue, lib, "PyObject_IsTrue")

	purego.RegisterLibFunc(&pyUnicodeFromString, lib, "PyUnicode_FromString")
	purego.RegisterLibFunc(&pyUnicodeAsUTF8, lib, "PyUnicode_AsUTF8")
	purego.RegisterLibFunc(&pyUnicodeAsUTF8Str, lib, "PyUnicode_AsUTF8")

	purego.RegisterLibFunc(&pyObjectGetAttrString, lib, "PyObject_GetAttrString")
	purego.RegisterLibFunc(&pyObjectSetAttrString, lib, "PyObject_SetAttrString")
	purego.RegisterLibFunc(&pyObjectHasAttrString, lib, "PyObject_HasAttrString")
	purego.RegisterLibFunc(&pyObjectCallObject, lib, "PyObject_CallObject")
	purego.RegisterLibFunc(&pyObjectStr, lib, "PyObject_Str")
	purego.RegisterLibFunc(&pyObjectIsInstance, lib, "PyObject_IsInstance")
	purego.RegisterLibFunc(&pyCallableCheck, lib, "PyCallable_Check")
	purego.RegisterLibFunc(&pyObjectSize, lib, "PyObject_Size")
	purego.RegisterLibFunc(&pyObjectGetItem, lib, "PyObject_GetItem")
	purego.RegisterLibFunc(&pyObjectSetItem, lib, "PyObject_SetItem")

	purego.RegisterLibFunc(&pySequenceGetItem, lib, "PySequence_GetItem")
	purego.RegisterLibFunc(&pySequenceSetItem, lib, "PySequence_SetItem")

	purego.RegisterLibFunc(&pyListNew, lib, "PyList_New")
	purego.RegisterLibFunc(&pyListSize, lib, "PyList_Size")
	purego.RegisterLibFunc(&pyListGetItem, lib, "PyList_GetItem")
	purego.RegisterLibFunc(&pyListSetItem, lib, "PyList_SetItem")
	purego.RegisterLibFunc(&pyListAppend, lib, "PyList_Append")

	purego.RegisterLibFunc(&pyDictNew, lib, "PyDict_New")
	purego.RegisterLibFunc(&pyDictGetItem, lib, "PyDict_GetItem")
	purego.RegisterLibFunc(&pyDictSetItem, lib, "PyDict_SetItem")
	purego.RegisterLibFunc(&pyDictGetItemString, lib, "PyDict_GetItemString")
	purego.RegisterLibFunc(&pyDictSetItemString, lib, "PyDict_SetItemString")
	purego.RegisterLibFunc(&pyDictDelItemString, lib, "PyDict_DelItemString")
	purego.RegisterLibFunc(&pyDictKeys, lib, "PyDict_Keys")

	purego.RegisterLibFunc(&pyTupleNew, lib, "PyTuple_New")
	purego.RegisterLibFunc(&pyTupleGetItem, lib, "PyTuple_GetItem")
	purego.RegisterLibFunc(&pyTupleSetItem, lib, "PyTuple_SetItem")

	purego.RegisterLibFunc(&pyImportImportModule, lib, "PyImport_ImportModule")
	purego.RegisterLibFunc(&pyImportAddModule, lib, "PyImport_AddModule")
	purego.RegisterLibFunc(&pyModuleGetDict, lib, "PyModule_GetDict")

	purego.RegisterLibFunc(&pyObjectGetIter, lib, "PyObject_GetIter")
	purego.RegisterLibFunc(&pyIterNext, lib, "PyIter_Next")
	purego.RegisterLibFunc(&pyIterCheck, lib, "PyIter_Check")

	purego.RegisterLibFunc(&pyBytesFromStringAndSize, lib, "PyBytes_FromStringAndSize")
	purego.RegisterLibFunc(&pyBytesAsString, lib, "PyBytes_AsString")
	purego.RegisterLibFunc(&pyBytesSize, lib, "PyBytes_Size")

	purego.RegisterLibFunc(&pyRunString, lib, "PyRun_String")

	purego.RegisterLibFunc(&pyObjectGetBuffer, lib, "PyObject_GetBuffer")
	purego.RegisterLibFunc(&pyBufferRelease, lib, "PyBuffer_Release")

	registerErrorBindings(lib)
	resolveDataSymbols(lib)

	bindingsRegistered = true
}

// resolveDataSymbols resolves the addresses of the interpreter's static
// singletons and builtin type objects. PyLong_Check and friends are macros,
// so type predicates go through PyObject_IsInstance against these.
func resolveDataSymbols(lib uintptr) {
	noneSingleton = dataSymbol(lib, "_Py_NoneStruct")
	trueSingleton = dataSymbol(lib, "_Py_TrueStruct")
	falseSingleton = dataSymbol(lib, "_Py_FalseStruct")

	listType = dataSymbol(lib, "PyList_Type")
	dictType = dataSymbol(lib, "PyDict_Type")
	tupleType = dataSymbol(lib, "PyTuple_Type")
	longType = dataSymbol(lib, "PyLong_Type")
	floatType = dataSymbol(lib, "PyFloat_Type")
	unicodeType = dataSymbol(lib, "PyUnicode_Type")
	boolType = dataSymbol(lib, "PyBool_Type")
	bytesType = dataSymbol(lib, "PyBytes_Type")
}

func dataSymbol(lib uintptr, name string) PyObject {
	addr, err := purego.Dlsym(lib, name)
	if err != nil || addr == 0 {
		return nil
	}
	return PyObject(unsafe.Pointer(addr))
}

// Loaded returns true if libpython bindings have been registered.
func Loaded() bool {
	return bindingsRegistered
}

// --- Interpreter lifecycle -------------------------------------------------

// IsInitialized returns non-zero if the interpreter is initialized.
func IsInitialized() int32 {
	if pyIsInitialized == nil {
		return 0
	}
	return pyIsInitialized()
}

// InitializeEx initializes the interpreter. initsigs=0 leaves signal
// handling to the embedding process.
func InitializeEx(initsigs int32) {
	if pyInitializeEx == nil {
		return
	}
	pyInitializeEx(initsigs)
}

// FinalizeEx shuts the interpreter down. Returns <0 on error.
func FinalizeEx() int32 {
	if pyFinalizeEx == nil {
		return -1
	}
	return pyFinalizeEx()
}

// --- GIL -------------------------------------------------------------------

// GILStateEnsure acquires the GIL, re-entrant via CPython's own nested-state
// token. The returned state must be passed to GILStateRelease on the same
// thread.
func GILStateEnsure() GILState {
	return pyGILStateEnsure()
}

// GILStateRelease releases a GIL acquisition made by GILStateEnsure.
func GILStateRelease(state GILState) {
	pyGILStateRelease(state)
}

// SaveThread releases the GIL and returns the thread state to restore.
// Precondition: the calling thread holds the GIL.
func SaveThread() ThreadState {
	return pyEvalSaveThread()
}

// RestoreThread reacquires the GIL for the given thread state, blocking
// until the lock is available.
func RestoreThread(save ThreadState) {
	pyEvalRestoreThread(save)
}

// --- Reference counting ----------------------------------------------------

// IncRef increments the object's reference count. Safe with nil.
func IncRef(obj PyObject) {
	if obj == nil || pyIncRef == nil {
		return
	}
	pyIncRef(obj)
}

// DecRef decrements the object's reference count, possibly freeing it.
// Safe with nil. The caller must own the reference being dropped.
func DecRef(obj PyObject) {
	if obj == nil || pyDecRef == nil {
		return
	}
	pyDecRef(obj)
}

// --- Scalars ---------------------------------------------------------------

// LongFromLongLong returns a new reference to an int object.
func LongFromLongLong(v int64) PyObject {
	if pyLongFromLongLong == nil {
		return nil
	}
	return pyLongFromLongLong(v)
}

// LongAsLongLong converts an int object. Returns -1 with the error state set
// on failure.
func LongAsLongLong(obj PyObject) int64 {
	if obj == nil || pyLongAsLongLong == nil {
		return 0
	}
	return pyLongAsLongLong(obj)
}

// FloatFromDouble returns a new reference to a float object.
func FloatFromDouble(v float64) PyObject {
	if pyFloatFromDouble == nil {
		return nil
	}
	return pyFloatFromDouble(v)
}

// FloatAsDouble converts a float object. Returns -1.0 with the error state
// set on failure.
func FloatAsDouble(obj PyObject) float64 {
	if obj == nil || pyFloatAsDouble == nil {
		return 0
	}
	return pyFloatAsDouble(obj)
}

// BoolFromLong returns a new reference to True or False.
func BoolFromLong(v int64) PyObject {
	if pyBoolFromLong == nil {
		return nil
	}
	return pyBoolFromLong(v)
}

// ObjectIsTrue returns 1 if obj is truthy, 0 if falsy, -1 on error.
func ObjectIsTrue(obj PyObject) int32 {
	if obj == nil || pyObjectIsTrue == nil {
		return 0
	}
	return pyObjectIsTrue(obj)
}

// UnicodeFromString returns a new reference to a str object.
func UnicodeFromString(s string) PyObject {
	if pyUnicodeFromString == nil {
		return nil
	}
	return pyUnicodeFromString(s)
}

// UnicodeAsUTF8 returns the UTF-8 representation of a str object.
// The pointer is borrowed: valid only while the object is alive and
// unmodified. Returns nil for non-str objects (error state set).
func UnicodeAsUTF8(obj PyObject) *byte {
	if obj == nil || pyUnicodeAsUTF8 == nil {
		return nil
	}
	return pyUnicodeAsUTF8(obj)
}

// UnicodeAsString copies the UTF-8 representation of a str object into a Go
// string. Returns "" for non-str objects (error state set).
func UnicodeAsString(obj PyObject) string {
	if obj == nil || pyUnicodeAsUTF8Str == nil {
		return ""
	}
	return pyUnicodeAsUTF8Str(obj)
}

// --- Object protocol -------------------------------------------------------

// GetAttrString returns a new reference to the named attribute, or nil with
// the error state set.
func GetAttrString(obj PyObject, name string) PyObject {
	if obj == nil || pyObjectGetAttrString == nil {
		return nil
	}
	return pyObjectGetAttrString(obj, name)
}

// SetAttrString sets the named attribute. Returns -1 on failure.
func SetAttrString(obj PyObject, name string, val PyObject) int32 {
	if obj == nil || pyObjectSetAttrString == nil {
		return -1
	}
	return pyObjectSetAttrString(obj, name, val)
}

// HasAttrString returns 1 if the attribute exists, else 0. Never raises.
func HasAttrString(obj PyObject, name string) int32 {
	if obj == nil || pyObjectHasAttrString == nil {
		return 0
	}
	return pyObjectHasAttrString(obj, name)
}

// CallObject calls a callable with an argument tuple (may be nil for no
// arguments). Returns a new reference, or nil with the error state set.
func CallObject(callable, args PyObject) PyObject {
	if callable == nil || pyObjectCallObject == nil {
		return nil
	}
	return pyObjectCallObject(callable, args)
}

// ObjectStr returns a new reference to str(obj).
func ObjectStr(obj PyObject) PyObject {
	if obj == nil || pyObjectStr == nil {
		return nil
	}
	return pyObjectStr(obj)
}

// IsInstance reports whether obj is an instance of cls (1/0, -1 on error).
func IsInstance(obj, cls PyObject) int32 {
	if obj == nil || cls == nil || pyObjectIsInstance == nil {
		return 0
	}
	return pyObjectIsInstance(obj, cls)
}

// CallableCheck returns 1 if the object is callable. Never raises.
func CallableCheck(obj PyObject) int32 {
	if obj == nil || pyCallableCheck == nil {
		return 0
	}
	return pyCallableCheck(obj)
}

// ObjectSize returns len(obj), or -1 with the error state set.
func ObjectSize(obj PyObject) int64 {
	if obj == nil || pyObjectSize == nil {
		return -1
	}
	return pyObjectSize(obj)
}

// GetItem returns a new reference to obj[key], or nil with the error state set.
func GetItem(obj, key PyObject) PyObject {
	if obj == nil || key == nil || pyObjectGetItem == nil {
		return nil
	}
	return pyObjectGetItem(obj, key)
}

// SetItem performs obj[key] = val without consuming val. Returns -1 on failure.
func SetItem(obj, key, val PyObject) int32 {
	if obj == nil || key == nil || pyObjectSetItem == nil {
		return -1
	}
	return pyObjectSetItem(obj, key, val)
}

// SequenceGetItem returns a new reference to obj[index].
func SequenceGetItem(obj PyObject, index int64) PyObject {
	if obj == nil || pySequenceGetItem == nil {
		return nil
	}
	return pySequenceGetItem(obj, index)
}

// SequenceSetItem performs obj[index] = val without consuming val.
func SequenceSetItem(obj PyObject, index int64, val PyObject) int32 {
	if obj == nil || pySequenceSetItem == nil {
		return -1
	}
	return pySequenceSetItem(obj, index, val)
}

// --- Lists -----------------------------------------------------------------

// ListNew returns a new reference to a list of the given size. Slots are
// NULL until filled with ListSetItem.
func ListNew(size int64) PyObject {
	if pyListNew == nil {
		return nil
	}
	return pyListNew(size)
}

// ListSize returns len(list), or -1 on failure.
func ListSize(list PyObject) int64 {
	if list == nil || pyListSize == nil {
		return -1
	}
	return pyListSize(list)
}

// ListGetItem returns a borrowed reference to list[index].
func ListGetItem(list PyObject, index int64) PyObject {
	if list == nil || pyListGetItem == nil {
		return nil
	}
	return pyListGetItem(list, index)
}

// ListSetItem stores item at list[index], stealing the item reference.
// The previous occupant's reference is dropped.
func ListSetItem(list PyObject, index int64, item PyObject) int32 {
	if list == nil || pyListSetItem == nil {
		return -1
	}
	return pyListSetItem(list, index, item)
}

// ListAppend appends item without consuming it.
func ListAppend(list, item PyObject) int32 {
	if list == nil || item == nil || pyListAppend == nil {
		return -1
	}
	return pyListAppend(list, item)
}

// --- Dicts -----------------------------------------------------------------

// DictNew returns a new reference to an empty dict.
func DictNew() PyObject {
	if pyDictNew == nil {
		return nil
	}
	return pyDictNew()
}

// DictGetItem returns a borrowed reference, or nil without raising if the
// key is absent.
func DictGetItem(dict, key PyObject) PyObject {
	if dict == nil || key == nil || pyDictGetItem == nil {
		return nil
	}
	return pyDictGetItem(dict, key)
}

// DictSetItem performs dict[key] = val without consuming either argument.
func DictSetItem(dict, key, val PyObject) int32 {
	if dict == nil || key == nil || pyDictSetItem == nil {
		return -1
	}
	return pyDictSetItem(dict, key, val)
}

// DictGetItemString returns a borrowed reference, or nil if the key is absent.
func DictGetItemString(dict PyObject, key string) PyObject {
	if dict == nil || pyDictGetItemString == nil {
		return nil
	}
	return pyDictGetItemString(dict, key)
}

// DictSetItemString performs dict[key] = val without consuming val.
func DictSetItemString(dict PyObject, key string, val PyObject) int32 {
	if dict == nil || pyDictSetItemString == nil {
		return -1
	}
	return pyDictSetItemString(dict, key, val)
}

// DictDelItemString removes dict[key]. Returns -1 with the error state set
// if the key is absent.
func DictDelItemString(dict PyObject, key string) int32 {
	if dict == nil || pyDictDelItemString == nil {
		return -1
	}
	return pyDictDelItemString(dict, key)
}

// DictKeys returns a new reference to a list of the dict's keys.
func DictKeys(dict PyObject) PyObject {
	if dict == nil || pyDictKeys == nil {
		return nil
	}
	return pyDictKeys(dict)
}

// --- Tuples ----------------------------------------------------------------

// TupleNew returns a new reference to a tuple of the given size. Slots are
// NULL until filled with TupleSetItem.
func TupleNew(size int64) PyObject {
	if pyTupleNew == nil {
		return nil
	}
	return pyTupleNew(size)
}

// TupleGetItem returns a borrowed reference to tuple[index].
func TupleGetItem(tuple PyObject, index int64) PyObject {
	if tuple == nil || pyTupleGetItem == nil {
		return nil
	}
	return pyTupleGetItem(tuple, index)
}

// TupleSetItem stores item at tuple[index], stealing the item reference.
// Only valid on a freshly created, not yet exposed tuple.
func TupleSetItem(tuple PyObject, index int64, item PyObject) int32 {
	if tuple == nil || pyTupleSetItem == nil {
		return -1
	}
	return pyTupleSetItem(tuple, index, item)
}

// --- Modules ---------------------------------------------------------------

// ImportModule imports and returns a new reference to the named module, or
// nil with the error state set.
func ImportModule(name string) PyObject {
	if pyImportImportModule == nil {
		return nil
	}
	return pyImportImportModule(name)
}

// ImportAddModule returns a borrowed reference to the named module, creating
// it if needed ("__main__" in particular).
func ImportAddModule(name string) PyObject {
	if pyImportAddModule == nil {
		return nil
	}
	return pyImportAddModule(name)
}

// ModuleGetDict returns a borrowed reference to a module's namespace dict.
func ModuleGetDict(module PyObject) PyObject {
	if module == nil || pyModuleGetDict == nil {
		return nil
	}
	return pyModuleGetDict(module)
}

// --- Iterators -------------------------------------------------------------

// GetIter returns a new reference to iter(obj), or nil with the error state
// set if the object is not iterable.
func GetIter(obj PyObject) PyObject {
	if obj == nil || pyObjectGetIter == nil {
		return nil
	}
	return pyObjectGetIter(obj)
}

// IterNext returns a new reference to the next item, or nil at exhaustion
// (no error state) or on failure (error state set).
func IterNext(iter PyObject) PyObject {
	if iter == nil || pyIterNext == nil {
		return nil
	}
	return pyIterNext(iter)
}

// IterCheck returns 1 if the object is an iterator.
func IterCheck(obj PyObject) int32 {
	if obj == nil || pyIterCheck == nil {
		return 0
	}
	return pyIterCheck(obj)
}

// --- Bytes -----------------------------------------------------------------

// BytesFromStringAndSize returns a new reference to a bytes object copied
// from data. data may contain NUL bytes.
func BytesFromStringAndSize(data unsafe.Pointer, size int64) PyObject {
	if pyBytesFromStringAndSize == nil {
		return nil
	}
	return pyBytesFromStringAndSize(data, size)
}

// BytesAsString returns a borrowed pointer to the bytes object's internal
// storage, valid while the object is alive. Returns nil for non-bytes.
func BytesAsString(obj PyObject) *byte {
	if obj == nil || pyBytesAsString == nil {
		return nil
	}
	return pyBytesAsString(obj)
}

// BytesSize returns len(obj) for a bytes object, or -1 on failure.
func BytesSize(obj PyObject) int64 {
	if obj == nil || pyBytesSize == nil {
		return -1
	}
	return pyBytesSize(obj)
}

// --- Evaluation ------------------------------------------------------------

// RunString compiles and runs source text against the given namespaces.
// start is EvalInput for expressions or FileInput for statements. Returns a
// new reference (the expression value, or None for FileInput), or nil with
// the error state set.
func RunString(src string, start int32, globals, locals PyObject) PyObject {
	if pyRunString == nil {
		return nil
	}
	return pyRunString(src, start, globals, locals)
}

// --- Buffer protocol -------------------------------------------------------

// ObjectGetBuffer fills view with a buffer descriptor for obj.
// Returns 0 on success; on failure returns -1 with the error state set and
// leaves view untouched.
func ObjectGetBuffer(obj PyObject, view *PyBufferView, flags int32) int32 {
	if obj == nil || view == nil || pyObjectGetBuffer == nil {
		return -1
	}
	return pyObjectGetBuffer(obj, unsafe.Pointer(view), flags)
}

// BufferRelease releases a buffer descriptor back to its exporter and drops
// the reference the descriptor held.
func BufferRelease(view *PyBufferView) {
	if view == nil || pyBufferRelease == nil {
		return
	}
	pyBufferRelease(unsafe.Pointer(view))
}

// --- Singletons and type objects -------------------------------------------

// None returns the None singleton (borrowed; the singleton is immortal).
func None() PyObject { return noneSingleton }

// True returns the True singleton (borrowed).
func True() PyObject { return trueSingleton }

// False returns the False singleton (borrowed).
func False() PyObject { return falseSingleton }

// ListType returns the list type object.
func ListType() PyObject { return listType }

// DictType returns the dict type object.
func DictType() PyObject { return dictType }

// TupleType returns the tuple type object.
func TupleType() PyObject { return tupleType }

// LongType returns the int type object.
func LongType() PyObject { return longType }

// FloatType returns the float type object.
func FloatType() PyObject { return floatType }

// UnicodeType returns the str type object.
func UnicodeType() PyObject { return unicodeType }

// BoolType returns the bool type object.
func BoolType() PyObject { return boolType }

// BytesType returns the bytes type object.
func BytesType() PyObject { return bytesType }
