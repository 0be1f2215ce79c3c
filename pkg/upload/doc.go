// Package upload stores files posted by file picker widgets.
//
// The flow pairs with widgets.FilePicker: the client posts the file to the
// host's upload endpoint, receives an upload reference, and reports that
// reference as the widget's value. Application code later claims the
// reference to consume the file. Unclaimed uploads expire.
package upload
