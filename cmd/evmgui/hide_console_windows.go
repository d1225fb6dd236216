//go:build windows

package main

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// hideConsoleWindow detaches the GUI from the console window Windows opens
// when the binary is started from Explorer. Launched from a terminal, the
// console belongs to the shell and is left alone.
func hideConsoleWindow() {
	user32 := windows.NewLazySystemDLL("user32.dll")
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	getConsoleWindow := kernel32.NewProc("GetConsoleWindow")
	getWindowThreadProcessID := user32.NewProc("GetWindowThreadProcessId")
	showWindow := user32.NewProc("ShowWindow")

	hwnd, _, _ := getConsoleWindow.Call()
	if hwnd == 0 {
		return
	}
	var owner uint32
	getWindowThreadProcessID.Call(hwnd, uintptr(unsafe.Pointer(&owner)))
	if owner != windows.GetCurrentProcessId() {
		return
	}
	showWindow.Call(hwnd, windows.SW_HIDE)
}
