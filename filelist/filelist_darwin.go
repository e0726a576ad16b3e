//go:build darwin

package filelist

/*
#cgo darwin CFLAGS: -x objective-c -fobjc-arc
#cgo darwin LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>
#import <CoreFoundation/CoreFoundation.h>
#import <stdlib.h>

// copyClipboardFilePaths reads every file path on the general pasteboard.
// Modern pasteboard items carry NSPasteboardTypeFileURL, older Finder
// versions the NSFilenamesPboardType property list; readObjectsForClasses is
// the fallback for promised URLs. Returns NULL when no item holds a file.
static CFArrayRef copyClipboardFilePaths() {
    NSPasteboard *pb = [NSPasteboard generalPasteboard];
    NSMutableArray<NSString *> *paths = [NSMutableArray array];

    for (NSPasteboardItem *item in [pb pasteboardItems]) {
        NSString *fileURLString = [item stringForType:NSPasteboardTypeFileURL];
        if (fileURLString.length > 0) {
            NSURL *url = [NSURL URLWithString:fileURLString];
            if (url.isFileURL && url.path.length > 0) {
                [paths addObject:url.path];
                continue;
            }
        }

        id propertyList = [item propertyListForType:NSFilenamesPboardType];
        if ([propertyList isKindOfClass:[NSArray class]]) {
            for (NSString *path in propertyList) {
                if ([path isKindOfClass:[NSString class]] && path.length > 0) {
                    [paths addObject:path];
                }
            }
        }
    }

    if (paths.count == 0) {
        NSArray<NSURL *> *urls = [pb readObjectsForClasses:@[[NSURL class]]
                                                   options:@{ NSPasteboardURLReadingFileURLsOnlyKey : @YES }];
        for (NSURL *url in urls) {
            if (url.path.length > 0) {
                [paths addObject:url.path];
            }
        }
    }

    if (paths.count == 0) {
        return NULL;
    }

    return (__bridge_retained CFArrayRef)paths;
}

static char *copyUTF8String(CFStringRef str) {
    if (str == NULL) {
        return NULL;
    }

    CFIndex length = CFStringGetLength(str);
    CFIndex maxSize = CFStringGetMaximumSizeForEncoding(length, kCFStringEncodingUTF8) + 1;
    char *buffer = (char *)malloc((size_t)maxSize);
    if (buffer == NULL) {
        return NULL;
    }

    if (CFStringGetCString(str, buffer, maxSize, kCFStringEncodingUTF8)) {
        return buffer;
    }

    free(buffer);
    return NULL;
}

static void clearClipboard() {
    [[NSPasteboard generalPasteboard] clearContents];
}
*/
import "C"
import "unsafe"

type darwinBackend struct{}

func newPlatformBackend() backend { return darwinBackend{} }

func (darwinBackend) init() error { return nil }

func (darwinBackend) readPaths() ([]string, error) {
	arr := C.copyClipboardFilePaths()
	if arr == 0 {
		return nil, ErrNoFileList
	}
	defer C.CFRelease(C.CFTypeRef(arr))

	count := C.CFArrayGetCount(arr)
	paths := make([]string, 0, int(count))
	for i := C.CFIndex(0); i < count; i++ {
		cfStr := C.CFStringRef(C.CFArrayGetValueAtIndex(arr, i))
		if cfStr == 0 {
			continue
		}
		cstr := C.copyUTF8String(cfStr)
		if cstr == nil {
			continue
		}
		paths = append(paths, C.GoString(cstr))
		C.free(unsafe.Pointer(cstr))
	}
	return paths, nil
}

// The pasteboard has no entry count short of enumerating its items, so count
// decodes the same payload the read does. That also keeps the two in
// agreement by construction.
func (b darwinBackend) count() (int, error) {
	paths, err := b.readPaths()
	if err != nil {
		return 0, err
	}
	return len(paths), nil
}

func (darwinBackend) clear() error {
	C.clearClipboard()
	return nil
}
