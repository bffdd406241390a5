package process

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/windows"
)

// Access rights needed for camera reads, writes and code patching.
const attachAccess = windows.PROCESS_VM_READ |
	windows.PROCESS_VM_WRITE |
	windows.PROCESS_VM_OPERATION |
	windows.PROCESS_QUERY_INFORMATION

// FindProcess returns the PID of the first process whose executable name
// matches, case-insensitively.
func FindProcess(name string) (uint32, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, fmt.Errorf("process snapshot: %w", err)
	}
	defer windows.CloseHandle(snap)

	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))
	if err := windows.Process32First(snap, &pe); err != nil {
		return 0, fmt.Errorf("process snapshot: %w", err)
	}

	for {
		if strings.EqualFold(windows.UTF16ToString(pe.ExeFile[:]), name) {
			return pe.ProcessID, nil
		}
		if windows.Process32Next(snap, &pe) != nil {
			break
		}
	}
	return 0, fmt.Errorf("process %q not found", name)
}

// GetModuleBase returns the load address of a module inside the process.
func GetModuleBase(pid uint32, name string) (uintptr, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPMODULE|windows.TH32CS_SNAPMODULE32, pid)
	if err != nil {
		return 0, fmt.Errorf("module snapshot: %w", err)
	}
	defer windows.CloseHandle(snap)

	var me windows.ModuleEntry32
	me.Size = uint32(unsafe.Sizeof(me))
	if err := windows.Module32First(snap, &me); err != nil {
		return 0, fmt.Errorf("module snapshot: %w", err)
	}

	for {
		if strings.EqualFold(windows.UTF16ToString(me.Module[:]), name) {
			return uintptr(me.ModBaseAddr), nil
		}
		if windows.Module32Next(snap, &me) != nil {
			break
		}
	}
	return 0, fmt.Errorf("module %q not found in PID %d", name, pid)
}

// Attach opens the target process with the access rights the trainer needs
// and resolves the main module base. The handle must be closed by the caller.
func Attach(name string) (windows.Handle, uintptr, error) {
	pid, err := FindProcess(name)
	if err != nil {
		return 0, 0, err
	}

	handle, err := windows.OpenProcess(attachAccess, false, pid)
	if err != nil {
		return 0, 0, fmt.Errorf("open process %d: %w (try running as Administrator)", pid, err)
	}

	base, err := GetModuleBase(pid, name)
	if err != nil {
		windows.CloseHandle(handle)
		return 0, 0, err
	}
	return handle, base, nil
}

// ListCandidates returns running process names containing the given
// substring, for the "process not found" diagnostic.
func ListCandidates(substr string) []string {
	procs, err := process.Processes()
	if err != nil {
		return nil
	}
	var names []string
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(name), strings.ToLower(substr)) {
			names = append(names, fmt.Sprintf("%s (PID %d)", name, p.Pid))
		}
	}
	return names
}
